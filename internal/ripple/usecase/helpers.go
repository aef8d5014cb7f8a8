package usecase

import (
	"time"

	"journal-ripples/internal/model"
	"journal-ripples/pkg/rrule"
)

// effectiveDue is the override, then the resolved date, then the entry date.
func effectiveDue(override *time.Time, rp model.Ripple) time.Time {
	switch {
	case override != nil:
		return rrule.Day(*override)
	case rp.DueDate != nil:
		return rrule.Day(*rp.DueDate)
	default:
		return rrule.Day(rp.EntryDate)
	}
}

func dayPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := rrule.Day(*t)
	return &d
}

func priorityOr(p model.Priority) model.Priority {
	if p == "" {
		return model.PriorityMedium
	}
	return p
}

func repeatLabel(wire string) string {
	if wire == "" {
		return ""
	}
	r, err := rrule.Parse(wire)
	if err != nil {
		return ""
	}
	return r.Describe()
}
