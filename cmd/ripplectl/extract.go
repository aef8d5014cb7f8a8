package main

import (
	"github.com/spf13/cobra"

	"journal-ripples/internal/extraction"
)

var (
	inputFormat string
	showAll     bool
)

func init() {
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(sieveCmd)

	extractCmd.Flags().StringVar(&inputFormat, "format", "text", "input format: text, html or markdown")
	extractCmd.Flags().BoolVar(&showAll, "all", false, "include candidates the sieve rejects")
}

var extractCmd = &cobra.Command{
	Use:   "extract [text]",
	Short: "Extract action candidates from text",
	Long: `Extract action candidates from text and run them through the sieve.

Examples:
  # Candidates that survive the sieve
  ripplectl extract "I need to call the bank tomorrow."

  # Every candidate with its verdict
  cat entry.md | ripplectl extract --format markdown --all`,
	RunE: runExtract,
}

var sieveCmd = &cobra.Command{
	Use:   "sieve [text]",
	Short: "Explain the sieve verdict for a fragment",
	Long: `Explain why the actionability sieve keeps or rejects a fragment.

Examples:
  ripplectl sieve "call mom"
  ripplectl sieve "that thing"`,
	RunE: runSieve,
}

type candidateOutput struct {
	Text        string             `json:"text"`
	Type        string             `json:"type"`
	Confidence  float64            `json:"confidence"`
	Pattern     string             `json:"pattern"`
	Context     string             `json:"context"`
	Counterpart string             `json:"counterpart,omitempty"`
	When        string             `json:"when,omitempty"`
	Verdict     extraction.Verdict `json:"verdict"`
}

type extractOutput struct {
	Candidates []candidateOutput `json:"candidates"`
	Rejected   map[string]int    `json:"rejected,omitempty"`
}

func runExtract(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}
	text, err = normalize(text, inputFormat)
	if err != nil {
		return err
	}
	lex, err := loadLexicon()
	if err != nil {
		return err
	}

	sieve := extraction.NewSieve(lex)
	out := extractOutput{Candidates: []candidateOutput{}, Rejected: map[string]int{}}
	for _, c := range extraction.NewExtractor(lex).Extract(text) {
		v := sieve.Explain(c.Text)
		if !v.Keep {
			out.Rejected[v.Reason]++
			if !showAll {
				continue
			}
		}
		out.Candidates = append(out.Candidates, candidateOutput{
			Text:        c.Text,
			Type:        string(c.Type),
			Confidence:  c.Confidence,
			Pattern:     c.Pattern,
			Context:     c.OriginalContext,
			Counterpart: c.Counterpart,
			When:        c.When,
			Verdict:     v,
		})
	}
	return printJSON(cmd, out)
}

func runSieve(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}
	lex, err := loadLexicon()
	if err != nil {
		return err
	}
	return printJSON(cmd, extraction.NewSieve(lex).Explain(text))
}
