package extraction

import (
	"regexp"
	"sort"
	"strings"

	"journal-ripples/internal/model"
	"journal-ripples/pkg/datemath"
	"journal-ripples/pkg/lexicon"
)

const fragment = `([^.!?;\n]+)`

var (
	taskPattern = regexp.MustCompile(`(?i)\b(?:(?:i|we)\s+)?((?:probably|maybe|might)\s+)?` +
		`(need to|have to|got to|gotta|should|want to|remember to|don'?t forget to|do not forget to)\s+` + fragment)

	recurringPattern = regexp.MustCompile(`(?i)\b(?:every|each)\s+` +
		`(monday|tuesday|wednesday|thursday|friday|saturday|sunday|morning|night|day|week|month|year)\b,?\s+` +
		`(?:(?:i|we)\s+)?(?:(?:really\s+)?(?:need to|should|have to|must|gotta|want to)\s+)?` + fragment)

	appointmentPattern = regexp.MustCompile(`(?i)\b(meeting|appointment|call|lunch|dinner|coffee)` +
		`(?:\s+with\s+([^.!?;\n]+?))?\s+(at|on)\s+` + fragment)

	spaces = regexp.MustCompile(`\s+`)
)

// Extractor scans plain text with typed pattern groups. It holds no mutable
// state and is safe for concurrent use.
type Extractor struct {
	lex   *lexicon.Compiled
	event *regexp.Regexp
}

// NewExtractor builds an extractor over the compiled lexicon. The event
// pattern is built from the lexicon's event keywords.
func NewExtractor(lex *lexicon.Compiled) *Extractor {
	e := &Extractor{lex: lex}
	if alt := lex.EventAlternation(); alt != "" {
		e.event = regexp.MustCompile(`(?i)\b((?:my|our|his|her|their|\w+['’]s)\s+(?:\w+\s+)?(?:` + alt + `))` +
			`\s+(?:is\s+|falls\s+)?(?:on|at)\s+` + fragment)
	}
	return e
}

type match struct {
	start int
	c     Candidate
}

// Extract returns the candidates found in text, in text order, deduplicated
// by exact original context (first wins).
func (e *Extractor) Extract(text string) []Candidate {
	text = datemath.FoldMeridiem(text)

	var found []match
	found = append(found, e.tasks(text)...)
	found = append(found, e.recurring(text)...)
	found = append(found, e.appointments(text)...)
	found = append(found, e.events(text)...)

	sort.SliceStable(found, func(i, j int) bool { return found[i].start < found[j].start })

	out := make([]Candidate, 0, len(found))
	seen := make(map[string]struct{}, len(found))
	for _, m := range found {
		if _, dup := seen[m.c.OriginalContext]; dup {
			continue
		}
		seen[m.c.OriginalContext] = struct{}{}
		out = append(out, m.c)
	}
	return out
}

func (e *Extractor) tasks(text string) []match {
	var out []match
	for _, idx := range taskPattern.FindAllStringSubmatchIndex(text, -1) {
		hedge := group(text, idx, 1)
		lead := strings.ToLower(group(text, idx, 2))
		frag := clean(group(text, idx, 3))
		if frag == "" {
			continue
		}

		c := Candidate{
			Text:            frag,
			OriginalContext: clean(text[idx[0]:idx[1]]),
			Type:            model.RippleTypeTask,
			Confidence:      ConfidenceTask,
			Pattern:         PatternTask,
		}
		switch {
		case hedge != "":
			c.Confidence = ConfidenceHedged
			c.Pattern = PatternHedgedTask
		case lead == "need to":
			c.Confidence = ConfidenceNeedTo
		}
		out = append(out, match{start: idx[0], c: c})
	}
	return out
}

func (e *Extractor) recurring(text string) []match {
	var out []match
	for _, idx := range recurringPattern.FindAllStringSubmatchIndex(text, -1) {
		cadence := strings.ToLower(group(text, idx, 1))
		frag := clean(group(text, idx, 2))
		if frag == "" {
			continue
		}
		out = append(out, match{start: idx[0], c: Candidate{
			Text:            frag + " (" + cadence + ")",
			OriginalContext: clean(text[idx[0]:idx[1]]),
			Type:            model.RippleTypeRecurringTask,
			Confidence:      ConfidenceRecurring,
			Cadence:         cadence,
			Pattern:         PatternRecurring,
		}})
	}
	return out
}

func (e *Extractor) appointments(text string) []match {
	var out []match
	for _, idx := range appointmentPattern.FindAllStringSubmatchIndex(text, -1) {
		context := clean(text[idx[0]:idx[1]])
		out = append(out, match{start: idx[0], c: Candidate{
			Text:            context,
			OriginalContext: context,
			Type:            model.RippleTypeAppointment,
			Confidence:      ConfidenceAppointment,
			Counterpart:     clean(group(text, idx, 2)),
			When:            group(text, idx, 3) + " " + clean(group(text, idx, 4)),
			Pattern:         PatternAppointment,
		}})
	}
	return out
}

func (e *Extractor) events(text string) []match {
	if e.event == nil {
		return nil
	}
	var out []match
	for _, idx := range e.event.FindAllStringSubmatchIndex(text, -1) {
		context := clean(text[idx[0]:idx[1]])
		out = append(out, match{start: idx[0], c: Candidate{
			Text:            context,
			OriginalContext: context,
			Type:            model.RippleTypeImportantEvent,
			Confidence:      ConfidenceEvent,
			When:            clean(group(text, idx, 2)),
			Pattern:         PatternEvent,
		}})
	}
	return out
}

func group(s string, idx []int, n int) string {
	if 2*n+1 >= len(idx) || idx[2*n] < 0 {
		return ""
	}
	return s[idx[2*n]:idx[2*n+1]]
}

// clean collapses whitespace and trims trailing separators.
func clean(s string) string {
	s = spaces.ReplaceAllString(strings.TrimSpace(s), " ")
	return strings.TrimRight(s, " ,:-")
}
