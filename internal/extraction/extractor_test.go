package extraction

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"journal-ripples/internal/model"
	"journal-ripples/pkg/lexicon"
)

func TestExtract(t *testing.T) {
	e := NewExtractor(lexicon.MustDefault())

	tests := []struct {
		name string
		text string
		want []Candidate
	}{
		{
			name: "Remember to",
			text: "Remember to send the slides this Friday.",
			want: []Candidate{{
				Text:            "send the slides this Friday",
				OriginalContext: "Remember to send the slides this Friday",
				Type:            model.RippleTypeTask,
				Confidence:      ConfidenceTask,
				Pattern:         PatternTask,
			}},
		},
		{
			name: "Gotta",
			text: "Gotta renew the license by next week.",
			want: []Candidate{{
				Text:            "renew the license by next week",
				OriginalContext: "Gotta renew the license by next week",
				Type:            model.RippleTypeTask,
				Confidence:      ConfidenceTask,
				Pattern:         PatternTask,
			}},
		},
		{
			name: "Need to scores higher",
			text: "I need to call the bank!",
			want: []Candidate{{
				Text:            "call the bank",
				OriginalContext: "I need to call the bank",
				Type:            model.RippleTypeTask,
				Confidence:      ConfidenceNeedTo,
				Pattern:         PatternTask,
			}},
		},
		{
			name: "Hedged",
			text: "I probably should clean the garage.",
			want: []Candidate{{
				Text:            "clean the garage",
				OriginalContext: "I probably should clean the garage",
				Type:            model.RippleTypeTask,
				Confidence:      ConfidenceHedged,
				Pattern:         PatternHedgedTask,
			}},
		},
		{
			name: "Recurring and task phrasing are both kept",
			text: "Every Friday I need to water the plants.",
			want: []Candidate{
				{
					Text:            "water the plants (friday)",
					OriginalContext: "Every Friday I need to water the plants",
					Type:            model.RippleTypeRecurringTask,
					Confidence:      ConfidenceRecurring,
					Cadence:         "friday",
					Pattern:         PatternRecurring,
				},
				{
					Text:            "water the plants",
					OriginalContext: "I need to water the plants",
					Type:            model.RippleTypeTask,
					Confidence:      ConfidenceNeedTo,
					Pattern:         PatternTask,
				},
			},
		},
		{
			name: "Appointment",
			text: "Lunch with Sam at noon on Friday.",
			want: []Candidate{{
				Text:            "Lunch with Sam at noon on Friday",
				OriginalContext: "Lunch with Sam at noon on Friday",
				Type:            model.RippleTypeAppointment,
				Confidence:      ConfidenceAppointment,
				Counterpart:     "Sam",
				When:            "at noon on Friday",
				Pattern:         PatternAppointment,
			}},
		},
		{
			name: "Appointment with dotted meridiem",
			text: "Dinner with Alex at 7 p.m. tomorrow.",
			want: []Candidate{{
				Text:            "Dinner with Alex at 7 pm tomorrow",
				OriginalContext: "Dinner with Alex at 7 pm tomorrow",
				Type:            model.RippleTypeAppointment,
				Confidence:      ConfidenceAppointment,
				Counterpart:     "Alex",
				When:            "at 7 pm tomorrow",
				Pattern:         PatternAppointment,
			}},
		},
		{
			name: "Important event",
			text: "Mia's birthday is on June 5.",
			want: []Candidate{{
				Text:            "Mia's birthday is on June 5",
				OriginalContext: "Mia's birthday is on June 5",
				Type:            model.RippleTypeImportantEvent,
				Confidence:      ConfidenceEvent,
				When:            "June 5",
				Pattern:         PatternEvent,
			}},
		},
		{
			name: "Exact duplicates collapse",
			text: "Remember to call mom. Remember to call mom.",
			want: []Candidate{{
				Text:            "call mom",
				OriginalContext: "Remember to call mom",
				Type:            model.RippleTypeTask,
				Confidence:      ConfidenceTask,
				Pattern:         PatternTask,
			}},
		},
		{
			name: "Nothing actionable",
			text: "The weather was lovely and we walked along the river.",
			want: []Candidate{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Extract(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	e := NewExtractor(lexicon.MustDefault())
	text := `Remember to send the slides this Friday. I probably should clean the garage.
Every Monday I have to take out the trash. Dinner with Alex on Saturday.
Our anniversary is on July 2. I need to renew the license by next week.`

	first := e.Extract(text)
	second := e.Extract(text)
	if len(first) == 0 {
		t.Fatalf("Extract() found no candidates")
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Extract() not idempotent (-first +second):\n%s", diff)
	}
}

func TestExtractWithSubstitutedLexicon(t *testing.T) {
	lex := lexicon.Default()
	lex.EventKeywords = []string{"gig"}
	compiled, err := lex.Compile()
	if err != nil {
		t.Fatalf("Compile() unexpected error: %v", err)
	}
	e := NewExtractor(compiled)

	got := e.Extract("Our gig is on Friday. My birthday is on June 5.")
	if len(got) != 1 || got[0].OriginalContext != "Our gig is on Friday" {
		t.Errorf("Extract() = %+v, want only the gig event", got)
	}
}
