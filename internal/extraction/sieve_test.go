package extraction

import (
	"testing"

	"journal-ripples/pkg/lexicon"
)

func TestSieveExplain(t *testing.T) {
	s := NewSieve(lexicon.MustDefault())

	tests := []struct {
		text   string
		reason string
		rule   string
	}{
		{text: "", reason: ReasonJunk, rule: "empty"},
		{text: "   ", reason: ReasonJunk, rule: "empty"},
		{text: "Later", reason: ReasonJunk, rule: "boring-word"},
		{text: "buy", reason: ReasonJunk, rule: "too-short"},
		{text: "fix it", reason: ReasonJunk, rule: "filler"},
		{text: "idk call someone", reason: ReasonJunk, rule: "filler"},
		{text: "a.b.c.d.e.f.g.h.i", reason: ReasonJunk, rule: "punctuation"},
		{text: "go now!", reason: ReasonJunk, rule: "punctuation"},
		{text: "the weather was nice", reason: ReasonNoVerb, rule: "verb"},
		{text: "send the slides this Friday", reason: ReasonOK, rule: "verb"},
		{text: "water the plants (friday)", reason: ReasonOK, rule: "verb"},
		{text: "follow up with the landlord", reason: ReasonOK, rule: "verb"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := s.Explain(tt.text)
			if got.Reason != tt.reason || got.Rule != tt.rule {
				t.Errorf("Explain(%q) = %+v, want reason %s rule %s", tt.text, got, tt.reason, tt.rule)
			}
			if got.Keep != (tt.reason == ReasonOK) {
				t.Errorf("Explain(%q).Keep = %v", tt.text, got.Keep)
			}
		})
	}
}

func TestSieveSoundness(t *testing.T) {
	lex := lexicon.MustDefault()
	s := NewSieve(lex)
	e := NewExtractor(lex)

	text := `Remember to send the slides this Friday. I should probably stuff.
Gotta renew the license by next week. I want to be happier. Don't forget to idk.
Every Sunday I need to call grandma. Meeting with the team on Monday at 10am.
We should get it. I have to honestly. Remember to breathe deeply and slowly.`

	kept, _ := s.Filter(e.Extract(text))
	if len(kept) == 0 {
		t.Fatalf("Filter() kept nothing")
	}
	for _, c := range kept {
		if _, ok := lex.FindVerb(c.Text); !ok {
			t.Errorf("kept candidate %q has no lexicon verb", c.Text)
		}
	}

	for _, w := range lexicon.Default().BoringWords {
		if s.Keep(w) {
			t.Errorf("boring word %q survived the sieve", w)
		}
	}
}

func TestSieveFilterCountsReasons(t *testing.T) {
	s := NewSieve(lexicon.MustDefault())
	in := []Candidate{
		{Text: "send the slides"},
		{Text: "later"},
		{Text: "the weather was nice"},
	}
	kept, rejected := s.Filter(in)
	if len(kept) != 1 || kept[0].Text != "send the slides" {
		t.Errorf("Filter() kept = %+v", kept)
	}
	if rejected[ReasonJunk] != 1 || rejected[ReasonNoVerb] != 1 {
		t.Errorf("Filter() rejected = %v", rejected)
	}
}
