package datemath

import (
	"fmt"
	"strings"
	"time"

	"journal-ripples/pkg/rrule"
)

// Parser resolves date phrases relative to a reference instant, interpreted in
// a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a single relative date phrase to midnight of that day in the
// parser's timezone. Phrases that start like an offset or a weekday but cannot
// be resolved are errors; anything else falls back to today.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	spans := findDates(relative, p.refDay(baseTime))
	if len(spans) > 0 && spans[0].start == 0 && spans[0].end == len(relative) {
		return p.startOfDay(spans[0].date), nil
	}

	switch {
	case strings.HasPrefix(relative, "in "):
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	case strings.HasPrefix(relative, "next "):
		return baseTime, fmt.Errorf("unknown weekday: %q", strings.TrimPrefix(relative, "next "))
	}

	// Fallback: treat unknown as today
	return p.startOfDay(p.refDay(baseTime)), nil
}

// refDay is the calendar day of t in the parser's timezone, as UTC midnight.
func (p *Parser) refDay(t time.Time) time.Time {
	return rrule.Day(t.In(p.location))
}

// startOfDay returns midnight of the calendar day d in the parser's timezone.
func (p *Parser) startOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, p.location)
}
