// Package main implements ripplectl, a CLI for running the entry analysis
// pipeline offline against a piece of text.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"journal-ripples/internal/entrytext"
	"journal-ripples/internal/model"
	"journal-ripples/pkg/datemath"
	"journal-ripples/pkg/lexicon"
	"journal-ripples/pkg/rrule"
)

var (
	// lexiconPath is an optional YAML lexicon merged over the defaults
	lexiconPath string
	// refDate is the reference day for relative phrases (YYYY-MM-DD)
	refDate string
	// timezone resolves relative phrases
	timezone string
	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ripplectl",
	Short: "Run journal entry analysis from the command line",
	Long: `ripplectl runs the ripple extraction pipeline against text given as
arguments or on stdin, and prints the results as JSON.

It needs no server or database and is meant for tuning a lexicon.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&lexiconPath, "lexicon", "", "YAML lexicon merged over the built-in one")
	rootCmd.PersistentFlags().StringVar(&refDate, "ref", "", "reference day, YYYY-MM-DD or a phrase like \"next monday\" (default: today)")
	rootCmd.PersistentFlags().StringVar(&timezone, "tz", "UTC", "IANA timezone for relative dates")
}

// readText joins args, or reads stdin when there are none or the only arg is "-".
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("no input text")
	}
	return text, nil
}

// normalize flattens markup the same way the orchestrator does.
func normalize(text, format string) (string, error) {
	f := model.EntryFormat(strings.ToLower(format))
	switch f {
	case model.FormatText, model.FormatHTML, model.FormatMarkdown:
	default:
		return "", fmt.Errorf("unknown format %q (want text, html or markdown)", format)
	}
	return entrytext.Normalize(text, f), nil
}

func loadLexicon() (*lexicon.Compiled, error) {
	lex, err := lexicon.LoadFile(lexiconPath)
	if err != nil {
		return nil, err
	}
	return lex.Compile()
}

func loadParser() (*datemath.Parser, error) {
	return datemath.NewParser(timezone)
}

// reference resolves --ref: an ISO day, or a relative phrase such as
// "tomorrow" or "next monday" taken from now. Empty means now.
func reference(p *datemath.Parser) (time.Time, error) {
	if refDate == "" {
		return time.Now().In(p.Location()), nil
	}
	if d, err := parseDay(refDate, p.Location()); err == nil {
		return d, nil
	}
	return p.Parse(refDate, time.Now())
}

func parseDay(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(rrule.DateFormat, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return d, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
