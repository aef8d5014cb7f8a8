package lexicon

import "strings"

// IsBoring reports whether word is in the boring-words set.
func (c *Compiled) IsBoring(word string) bool {
	_, ok := c.boring[strings.ToLower(strings.TrimSpace(word))]
	return ok
}

// IsVerb reports whether word is a single-word lexicon verb, exact match.
func (c *Compiled) IsVerb(word string) bool {
	_, ok := c.verbs[strings.ToLower(word)]
	return ok
}

// MatchFiller returns the first filler pattern that matches text.
func (c *Compiled) MatchFiller(text string) (string, bool) {
	for _, re := range c.fillers {
		if re.MatchString(text) {
			return re.String(), true
		}
	}
	return "", false
}

// FindVerb returns the first verb or verb phrase found as a whole word.
// Single-word verbs accept the suffixes e, ed, es and ing.
func (c *Compiled) FindVerb(text string) (string, bool) {
	if c.phrasePattern != nil {
		if m := c.phrasePattern.FindString(text); m != "" {
			return strings.ToLower(m), true
		}
	}
	if c.verbPattern != nil {
		if m := c.verbPattern.FindStringSubmatch(text); m != nil {
			return strings.ToLower(m[1]), true
		}
	}
	return "", false
}

// HasAppointmentKeyword reports whether text mentions an appointment keyword.
func (c *Compiled) HasAppointmentKeyword(text string) bool {
	return c.appointment != nil && c.appointment.MatchString(text)
}

// HasEventKeyword reports whether text mentions a dated-event keyword.
func (c *Compiled) HasEventKeyword(text string) bool {
	return c.event != nil && c.event.MatchString(text)
}

func (c *Compiled) IsUrgent(text string) bool {
	return c.urgent != nil && c.urgent.MatchString(text)
}

func (c *Compiled) IsHedged(text string) bool {
	return c.hedge != nil && c.hedge.MatchString(text)
}

// ClusterHits counts keyword hits per cluster. Clusters with no hits are omitted.
func (c *Compiled) ClusterHits(text string) map[string]int {
	hits := make(map[string]int)
	for _, cluster := range c.clusterOrder {
		if n := len(c.clusterHints[cluster].FindAllStringIndex(text, -1)); n > 0 {
			hits[cluster] = n
		}
	}
	return hits
}

// Clusters lists the hinted cluster names in sorted order.
func (c *Compiled) Clusters() []string {
	out := make([]string, len(c.clusterOrder))
	copy(out, c.clusterOrder)
	return out
}

// EventAlternation is the quoted regexp alternation of the event keywords,
// or empty when there are none.
func (c *Compiled) EventAlternation() string {
	return alternation(c.eventWords)
}
