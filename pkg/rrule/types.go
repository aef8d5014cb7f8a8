package rrule

import "time"

// Frequency is the base cadence of a rule.
type Frequency string

const (
	Daily   Frequency = "DAILY"
	Weekly  Frequency = "WEEKLY"
	Monthly Frequency = "MONTHLY"
	Yearly  Frequency = "YEARLY"
)

// Weekday is a two-letter weekday code as used in the BYDAY key.
type Weekday string

const (
	MO Weekday = "MO"
	TU Weekday = "TU"
	WE Weekday = "WE"
	TH Weekday = "TH"
	FR Weekday = "FR"
	SA Weekday = "SA"
	SU Weekday = "SU"
)

var weekdayByCode = map[Weekday]time.Weekday{
	MO: time.Monday,
	TU: time.Tuesday,
	WE: time.Wednesday,
	TH: time.Thursday,
	FR: time.Friday,
	SA: time.Saturday,
	SU: time.Sunday,
}

var codeByWeekday = map[time.Weekday]Weekday{
	time.Monday:    MO,
	time.Tuesday:   TU,
	time.Wednesday: WE,
	time.Thursday:  TH,
	time.Friday:    FR,
	time.Saturday:  SA,
	time.Sunday:    SU,
}

// WeekdayOf returns the code for a time.Weekday.
func WeekdayOf(d time.Weekday) Weekday {
	return codeByWeekday[d]
}

// Time returns the time.Weekday for the code and whether the code is known.
func (w Weekday) Time() (time.Weekday, bool) {
	d, ok := weekdayByCode[w]
	return d, ok
}

// Rule is a normalized recurrence description. Zero values mean "not set";
// Interval 0 behaves as 1.
type Rule struct {
	Freq       Frequency
	Interval   int
	ByWeekday  []Weekday
	ByMonthDay int
	BySetPos   int
	ByMonth    int
	Until      time.Time
}

// IsZero reports whether the rule carries no frequency, i.e. "no rule".
func (r Rule) IsZero() bool {
	return r.Freq == ""
}

func (r Rule) interval() int {
	if r.Interval < 1 {
		return 1
	}
	return r.Interval
}
