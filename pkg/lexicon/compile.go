package lexicon

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// MustDefault compiles the built-in tables. It panics only if they are broken.
func MustDefault() *Compiled {
	c, err := Default().Compile()
	if err != nil {
		panic(err)
	}
	return c
}

// Compile validates the tables and builds the lookup sets and patterns.
func (l Lexicon) Compile() (*Compiled, error) {
	if len(l.Verbs) == 0 && len(l.VerbPhrases) == 0 {
		return nil, fmt.Errorf("lexicon: at least one verb or verb phrase is required")
	}

	c := &Compiled{
		verbs:        toSet(l.Verbs),
		boring:       toSet(l.BoringWords),
		clusterHints: make(map[string]*regexp.Regexp, len(l.ClusterHints)),
	}

	if len(l.Verbs) > 0 {
		c.verbPattern = regexp.MustCompile(`(?i)\b(` + alternation(l.Verbs) + `)(e|ed|es|ing)?\b`)
	}
	if len(l.VerbPhrases) > 0 {
		c.phrasePattern = regexp.MustCompile(`(?i)\b(` + alternation(l.VerbPhrases) + `)\b`)
	}

	for _, raw := range l.FillerPatterns {
		re, err := regexp.Compile(raw)
		if err != nil {
			return nil, fmt.Errorf("lexicon: filler pattern %q: %w", raw, err)
		}
		c.fillers = append(c.fillers, re)
	}

	c.eventWords = clone(l.EventKeywords)
	c.appointment = wordPattern(l.AppointmentKeywords)
	c.event = wordPattern(l.EventKeywords)
	c.urgent = wordPattern(l.UrgentWords)
	c.hedge = wordPattern(l.HedgeWords)

	for cluster, words := range l.ClusterHints {
		if re := wordPattern(words); re != nil {
			c.clusterHints[cluster] = re
			c.clusterOrder = append(c.clusterOrder, cluster)
		}
	}
	sort.Strings(c.clusterOrder)
	return c, nil
}

// alternation quotes and joins words longest first so the regexp prefers the
// longest literal.
func alternation(words []string) string {
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(strings.ToLower(w))
		if w == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(w))
	}
	sort.SliceStable(quoted, func(i, j int) bool { return len(quoted[i]) > len(quoted[j]) })
	return strings.Join(quoted, "|")
}

func wordPattern(words []string) *regexp.Regexp {
	alt := alternation(words)
	if alt == "" {
		return nil
	}
	return regexp.MustCompile(`(?i)\b(` + alt + `)\b`)
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(strings.ToLower(w)); w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}
