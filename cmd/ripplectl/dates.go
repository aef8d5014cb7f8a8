package main

import (
	"github.com/spf13/cobra"

	"journal-ripples/pkg/rrule"
)

func init() {
	rootCmd.AddCommand(datesCmd)
	rootCmd.AddCommand(recurCmd)
}

var datesCmd = &cobra.Command{
	Use:   "dates [text]",
	Short: "Resolve the date mentions in text",
	Long: `Resolve every date mention in text against a reference day.

Examples:
  ripplectl dates --ref 2024-06-10 "Dentist on Friday at 3pm, then lunch next Monday."`,
	RunE: runDates,
}

var recurCmd = &cobra.Command{
	Use:   "recur [text]",
	Short: "Detect a recurrence phrase and print its rule",
	Long: `Detect a recurrence phrase in text and print the rule, a readable label and
the first occurrence on or after the reference day.

Examples:
  ripplectl recur --ref 2024-06-10 "water the plants every friday"`,
	RunE: runRecur,
}

type mentionOutput struct {
	Title     string `json:"title"`
	Date      string `json:"date"`
	TimeStart string `json:"time_start,omitempty"`
	Phrase    string `json:"phrase"`
}

type recurOutput struct {
	Found  bool   `json:"found"`
	Rule   string `json:"rule,omitempty"`
	Label  string `json:"label,omitempty"`
	Next   string `json:"next,omitempty"`
	Phrase string `json:"phrase,omitempty"`
}

func runDates(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}
	p, err := loadParser()
	if err != nil {
		return err
	}
	ref, err := reference(p)
	if err != nil {
		return err
	}

	out := []mentionOutput{}
	for _, m := range p.ExtractDates(text, ref) {
		out = append(out, mentionOutput{
			Title:     m.Title,
			Date:      m.Date.Format(rrule.DateFormat),
			TimeStart: m.TimeStart,
			Phrase:    m.Phrase,
		})
	}
	return printJSON(cmd, out)
}

func runRecur(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}
	p, err := loadParser()
	if err != nil {
		return err
	}
	ref, err := reference(p)
	if err != nil {
		return err
	}

	rec, ok := p.ParseRecurrence(text, ref)
	if !ok {
		return printJSON(cmd, recurOutput{})
	}
	out := recurOutput{
		Found:  true,
		Rule:   rec.Rule.String(),
		Label:  rec.Rule.Describe(),
		Phrase: rec.Phrase,
	}
	if !rec.Next.IsZero() {
		out.Next = rec.Next.Format(rrule.DateFormat)
	}
	return printJSON(cmd, out)
}
