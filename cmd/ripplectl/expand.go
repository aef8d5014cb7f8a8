package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"journal-ripples/pkg/rrule"
)

var (
	expandAnchor string
	expandTo     string
)

func init() {
	rootCmd.AddCommand(expandCmd)

	expandCmd.Flags().StringVar(&expandAnchor, "anchor", "", "first day of the series, YYYY-MM-DD (default: --ref)")
	expandCmd.Flags().StringVar(&expandTo, "to", "", "last day of the window, YYYY-MM-DD (required)")
	_ = expandCmd.MarkFlagRequired("to")
}

var expandCmd = &cobra.Command{
	Use:   "expand <rule>",
	Short: "List the occurrences of a recurrence rule",
	Long: `List the occurrences of a recurrence rule between --ref and --to, both inclusive.

Examples:
  ripplectl expand "FREQ=MONTHLY;BYDAY=FR;BYSETPOS=-1" --ref 2024-01-01 --to 2024-06-30
  ripplectl expand "FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,TH" --anchor 2024-06-03 --ref 2024-06-10 --to 2024-07-01`,
	Args: cobra.ExactArgs(1),
	RunE: runExpand,
}

type expandOutput struct {
	Rule        string   `json:"rule"`
	Label       string   `json:"label"`
	Occurrences []string `json:"occurrences"`
}

func runExpand(cmd *cobra.Command, args []string) error {
	rule, err := rrule.Parse(args[0])
	if err != nil {
		return err
	}
	if err := rule.Validate(); err != nil {
		return err
	}

	from := time.Now().UTC()
	if refDate != "" {
		if from, err = parseDay(refDate, time.UTC); err != nil {
			return err
		}
	}
	to, err := parseDay(expandTo, time.UTC)
	if err != nil {
		return err
	}
	if to.Before(rrule.Day(from)) {
		return fmt.Errorf("--to %s is before the window start", expandTo)
	}
	anchor := from
	if expandAnchor != "" {
		if anchor, err = parseDay(expandAnchor, time.UTC); err != nil {
			return err
		}
	}

	return printJSON(cmd, expandOutput{
		Rule:        rule.String(),
		Label:       rule.Describe(),
		Occurrences: rrule.ExpandISO(rule, anchor, from, to),
	})
}
