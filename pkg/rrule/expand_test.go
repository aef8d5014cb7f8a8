package rrule_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"journal-ripples/pkg/rrule"
)

func mustParse(t *testing.T, s string) rrule.Rule {
	t.Helper()
	r, err := rrule.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) unexpected error: %v", s, err)
	}
	return r
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name   string
		rule   string
		anchor string
		from   string
		to     string
		want   []string
	}{
		{
			name:   "Monthly month day skips an already passed anchor month",
			rule:   "FREQ=MONTHLY;BYMONTHDAY=15",
			anchor: "2024-01-20",
			from:   "2024-01-01",
			to:     "2024-04-30",
			want:   []string{"2024-02-15", "2024-03-15", "2024-04-15"},
		},
		{
			name:   "Daily with interval",
			rule:   "FREQ=DAILY;INTERVAL=3",
			anchor: "2024-06-01",
			from:   "2024-06-05",
			to:     "2024-06-15",
			want:   []string{"2024-06-07", "2024-06-10", "2024-06-13"},
		},
		{
			name:   "Weekly without BYDAY uses the anchor weekday",
			rule:   "FREQ=WEEKLY",
			anchor: "2024-06-12",
			from:   "2024-06-01",
			to:     "2024-06-30",
			want:   []string{"2024-06-12", "2024-06-19", "2024-06-26"},
		},
		{
			name:   "Weekly by day every other week",
			rule:   "FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,TH",
			anchor: "2024-06-05",
			from:   "2024-06-01",
			to:     "2024-06-30",
			want:   []string{"2024-06-06", "2024-06-17", "2024-06-20"},
		},
		{
			name:   "Weekdays",
			rule:   "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR",
			anchor: "2024-06-01",
			from:   "2024-06-07",
			to:     "2024-06-11",
			want:   []string{"2024-06-07", "2024-06-10", "2024-06-11"},
		},
		{
			name:   "Last Friday of the month",
			rule:   "FREQ=MONTHLY;BYDAY=FR;BYSETPOS=-1",
			anchor: "2024-01-01",
			from:   "2024-01-01",
			to:     "2024-03-31",
			want:   []string{"2024-01-26", "2024-02-23", "2024-03-29"},
		},
		{
			name:   "First Monday every other month",
			rule:   "FREQ=MONTHLY;INTERVAL=2;BYDAY=MO;BYSETPOS=1",
			anchor: "2024-01-01",
			from:   "2024-02-01",
			to:     "2024-07-31",
			want:   []string{"2024-03-04", "2024-05-06", "2024-07-01"},
		},
		{
			name:   "Monthly on the 31st skips short months",
			rule:   "FREQ=MONTHLY;BYMONTHDAY=31",
			anchor: "2024-01-01",
			from:   "2024-01-01",
			to:     "2024-05-31",
			want:   []string{"2024-01-31", "2024-03-31", "2024-05-31"},
		},
		{
			name:   "Yearly on a fixed month and day",
			rule:   "FREQ=YEARLY;BYMONTH=6;BYMONTHDAY=5",
			anchor: "2023-01-10",
			from:   "2023-01-01",
			to:     "2026-12-31",
			want:   []string{"2023-06-05", "2024-06-05", "2025-06-05", "2026-06-05"},
		},
		{
			name:   "Yearly leap day only in leap years",
			rule:   "FREQ=YEARLY",
			anchor: "2024-02-29",
			from:   "2024-01-01",
			to:     "2029-01-01",
			want:   []string{"2024-02-29", "2028-02-29"},
		},
		{
			name:   "Until clips the window",
			rule:   "FREQ=WEEKLY;BYDAY=MO;UNTIL=2024-06-17",
			anchor: "2024-06-01",
			from:   "2024-06-01",
			to:     "2024-06-30",
			want:   []string{"2024-06-03", "2024-06-10", "2024-06-17"},
		},
		{
			name:   "Window before anchor is empty",
			rule:   "FREQ=DAILY",
			anchor: "2024-06-10",
			from:   "2024-06-01",
			to:     "2024-06-09",
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rrule.ExpandISO(mustParse(t, tt.rule), date(tt.anchor), date(tt.from), date(tt.to))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExpandISO() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExpandInvalidRule(t *testing.T) {
	anchor := date("2024-06-01")
	if got := rrule.Expand(rrule.Rule{}, anchor, anchor, anchor.AddDate(0, 1, 0)); len(got) != 0 {
		t.Errorf("Expand() with no FREQ returned %d dates", len(got))
	}
	if got := rrule.Expand(rrule.Rule{Freq: "HOURLY"}, anchor, anchor, anchor.AddDate(0, 1, 0)); len(got) != 0 {
		t.Errorf("Expand() with unknown FREQ returned %d dates", len(got))
	}
}

func TestExpandIntervalBound(t *testing.T) {
	anchor := date("2024-06-01")
	for _, freq := range []rrule.Frequency{rrule.Daily, rrule.Weekly, rrule.Monthly, rrule.Yearly} {
		r := rrule.Rule{Freq: freq, Interval: math.MaxInt}
		if !errors.Is(r.Validate(), rrule.ErrInvalidInterval) {
			t.Errorf("%s: Validate() accepted INTERVAL=%d", freq, r.Interval)
		}
		if got := rrule.Expand(r, anchor, anchor, anchor.AddDate(10, 0, 0)); len(got) != 0 {
			t.Errorf("%s: Expand() returned %d dates for an out-of-range interval", freq, len(got))
		}
	}

	r := rrule.Rule{Freq: rrule.Daily, Interval: rrule.MaxInterval}
	want := []string{"2024-06-01", "2027-02-26", "2029-11-22"}
	if diff := cmp.Diff(want, rrule.ExpandISO(r, anchor, anchor, date("2030-01-01"))); diff != "" {
		t.Errorf("ExpandISO() at the interval bound mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandWindowBound(t *testing.T) {
	rules := []string{
		"FREQ=DAILY",
		"FREQ=DAILY;INTERVAL=5",
		"FREQ=WEEKLY;INTERVAL=3;BYDAY=TU,SA",
		"FREQ=MONTHLY;BYMONTHDAY=29",
		"FREQ=MONTHLY;BYDAY=WE;BYSETPOS=3",
		"FREQ=YEARLY;INTERVAL=2",
		"FREQ=WEEKLY;BYDAY=SU;UNTIL=2024-09-15",
	}
	anchors := []string{"2023-11-30", "2024-02-29", "2024-06-10"}

	for _, s := range rules {
		r := mustParse(t, s)
		for _, a := range anchors {
			anchor := date(a)
			for offset := -40; offset <= 400; offset += 37 {
				from := anchor.AddDate(0, 0, offset)
				to := from.AddDate(0, 0, 90)
				for _, d := range rrule.Expand(r, anchor, from, to) {
					if d.Before(from) || d.After(to) {
						t.Errorf("%s anchor=%s: %s outside [%s, %s]", s, a, d.Format(rrule.DateFormat), from.Format(rrule.DateFormat), to.Format(rrule.DateFormat))
					}
					if !r.Until.IsZero() && d.After(r.Until) {
						t.Errorf("%s anchor=%s: %s after UNTIL", s, a, d.Format(rrule.DateFormat))
					}
				}
			}
		}
	}
}

func TestExpandWeeklyIntervalLaw(t *testing.T) {
	r := mustParse(t, "FREQ=WEEKLY;INTERVAL=2")
	for _, a := range []string{"2024-01-01", "2024-03-13", "2024-12-29"} {
		anchor := date(a)
		dates := rrule.Expand(r, anchor, anchor, anchor.AddDate(1, 0, 0))
		if len(dates) < 2 {
			t.Fatalf("anchor=%s: expected several occurrences, got %d", a, len(dates))
		}
		for i := 1; i < len(dates); i++ {
			if gap := dates[i].Sub(dates[i-1]); gap != 14*24*time.Hour {
				t.Errorf("anchor=%s: gap between %s and %s is %v", a, dates[i-1].Format(rrule.DateFormat), dates[i].Format(rrule.DateFormat), gap)
			}
		}
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		name   string
		rule   string
		anchor string
		from   string
		want   string
		ok     bool
	}{
		{name: "Same day counts", rule: "FREQ=WEEKLY;BYDAY=MO", anchor: "2024-06-10", from: "2024-06-10", want: "2024-06-10", ok: true},
		{name: "Leap day years away", rule: "FREQ=YEARLY", anchor: "2024-02-29", from: "2024-03-01", want: "2028-02-29", ok: true},
		{name: "Past until", rule: "FREQ=DAILY;UNTIL=2024-01-01", anchor: "2023-12-01", from: "2024-02-01", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := rrule.Next(mustParse(t, tt.rule), date(tt.anchor), date(tt.from))
			if ok != tt.ok {
				t.Fatalf("Next() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got.Format(rrule.DateFormat) != tt.want {
				t.Errorf("Next() = %s, want %s", got.Format(rrule.DateFormat), tt.want)
			}
		})
	}
}
