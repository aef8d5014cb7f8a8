package lexicon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML lexicon and merges its non-empty sections over the
// defaults. An empty path returns the defaults.
func LoadFile(path string) (Lexicon, error) {
	lex := Default()
	if path == "" {
		return lex, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Lexicon{}, fmt.Errorf("lexicon: read %s: %w", path, err)
	}
	var override Lexicon
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Lexicon{}, fmt.Errorf("lexicon: parse %s: %w", path, err)
	}
	return lex.Merge(override), nil
}

// Merge returns l with every non-empty section of o replacing its counterpart.
// Cluster hints are merged per cluster.
func (l Lexicon) Merge(o Lexicon) Lexicon {
	pick := func(base, over []string) []string {
		if len(over) > 0 {
			return clone(over)
		}
		return base
	}
	l.Verbs = pick(l.Verbs, o.Verbs)
	l.VerbPhrases = pick(l.VerbPhrases, o.VerbPhrases)
	l.BoringWords = pick(l.BoringWords, o.BoringWords)
	l.FillerPatterns = pick(l.FillerPatterns, o.FillerPatterns)
	l.AppointmentKeywords = pick(l.AppointmentKeywords, o.AppointmentKeywords)
	l.EventKeywords = pick(l.EventKeywords, o.EventKeywords)
	l.UrgentWords = pick(l.UrgentWords, o.UrgentWords)
	l.HedgeWords = pick(l.HedgeWords, o.HedgeWords)

	if len(o.ClusterHints) > 0 {
		hints := make(map[string][]string, len(l.ClusterHints)+len(o.ClusterHints))
		for k, v := range l.ClusterHints {
			hints[k] = v
		}
		for k, v := range o.ClusterHints {
			hints[k] = clone(v)
		}
		l.ClusterHints = hints
	}
	return l
}
