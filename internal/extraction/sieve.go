package extraction

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"journal-ripples/pkg/lexicon"
)

const (
	minTextLength = 6
	minLetters    = 8
)

// Sieve is the actionability filter applied to candidate text.
type Sieve struct {
	lex *lexicon.Compiled
}

func NewSieve(lex *lexicon.Compiled) *Sieve {
	return &Sieve{lex: lex}
}

// Keep reports whether text survives the sieve.
func (s *Sieve) Keep(text string) bool {
	return s.Explain(text).Keep
}

// Explain runs the rejection rules in order; the first that matches decides.
func (s *Sieve) Explain(text string) Verdict {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return junk("empty")
	}
	if !strings.ContainsFunc(trimmed, unicode.IsSpace) && s.lex.IsBoring(trimmed) {
		return junk("boring-word")
	}
	if utf8.RuneCountInString(trimmed) < minTextLength {
		return junk("too-short")
	}
	if _, ok := s.lex.MatchFiller(trimmed); ok {
		return junk("filler")
	}

	letters, punct := 0, 0
	for _, r := range trimmed {
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsPunct(r):
			punct++
		}
	}
	if letters < minLetters || 2*punct > letters {
		return junk("punctuation")
	}

	verb, ok := s.lex.FindVerb(trimmed)
	if !ok {
		return Verdict{Keep: false, Reason: ReasonNoVerb, Rule: "verb"}
	}
	return Verdict{Keep: true, Reason: ReasonOK, Rule: "verb", Verb: verb}
}

// Filter returns the candidates whose text survives the sieve, in order.
func (s *Sieve) Filter(candidates []Candidate) (kept []Candidate, rejected map[string]int) {
	rejected = make(map[string]int)
	for _, c := range candidates {
		v := s.Explain(c.Text)
		if !v.Keep {
			rejected[v.Reason]++
			continue
		}
		kept = append(kept, c)
	}
	return kept, rejected
}

func junk(rule string) Verdict {
	return Verdict{Keep: false, Reason: ReasonJunk, Rule: rule}
}
