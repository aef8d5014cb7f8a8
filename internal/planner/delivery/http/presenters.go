package http

import (
	"time"

	"journal-ripples/internal/planner"
	"journal-ripples/pkg/response"
	"journal-ripples/pkg/rrule"
)

// --- Request DTOs ---

type listTasksReq struct {
	ClusterID string `form:"cluster_id"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

func (r listTasksReq) toInput() planner.ListTasksInput {
	return planner.ListTasksInput{ClusterID: r.ClusterID, Limit: r.Limit}
}

type rangeReq struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to"   binding:"required"`

	from, to time.Time
}

func (r *rangeReq) validate() error {
	var err error
	if r.from, err = time.Parse(rrule.DateFormat, r.From); err != nil {
		return errInvalidDate
	}
	if r.to, err = time.Parse(rrule.DateFormat, r.To); err != nil {
		return errInvalidDate
	}
	return nil
}

type listAppointmentsReq struct {
	rangeReq
	IncludeSeries bool `form:"include_series"`
}

func (r listAppointmentsReq) toInput() planner.ListAppointmentsInput {
	return planner.ListAppointmentsInput{From: r.from, To: r.to, IncludeSeries: r.IncludeSeries}
}

type listEventsReq struct {
	rangeReq
}

func (r listEventsReq) toInput() planner.ListEventsInput {
	return planner.ListEventsInput{From: r.from, To: r.to}
}

// --- Response DTOs ---

type taskResp struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Details        string             `json:"details,omitempty"`
	DueDate        *response.Day      `json:"due_date,omitempty"`
	Recurrence     string             `json:"recurrence,omitempty"`
	RepeatLabel    string             `json:"repeat_label,omitempty"`
	ClusterID      string             `json:"cluster_id,omitempty"`
	SourceRippleID string             `json:"source_ripple_id,omitempty"`
	CreatedAt      response.Timestamp `json:"created_at"`
}

type listTasksResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newListTasksResp(out planner.ListTasksOutput) listTasksResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = taskResp{
			ID:             t.ID,
			Title:          t.Title,
			Details:        t.Details,
			DueDate:        response.DayPtr(t.DueDate),
			Recurrence:     t.Recurrence,
			RepeatLabel:    repeatLabel(t.Recurrence),
			ClusterID:      t.ClusterID,
			SourceRippleID: t.SourceRippleID,
			CreatedAt:      response.Timestamp(t.CreatedAt),
		}
	}
	return listTasksResp{Tasks: tasks}
}

type occurrenceResp struct {
	AppointmentID string       `json:"appointment_id"`
	Title         string       `json:"title"`
	Date          response.Day `json:"date"`
	StartTime     string       `json:"start_time,omitempty"`
	Virtual       bool         `json:"virtual"`
}

type listAppointmentsResp struct {
	Occurrences []occurrenceResp `json:"occurrences"`
}

func (h *handler) newListAppointmentsResp(out planner.ListAppointmentsOutput) listAppointmentsResp {
	occ := make([]occurrenceResp, len(out.Occurrences))
	for i, o := range out.Occurrences {
		occ[i] = occurrenceResp{
			AppointmentID: o.AppointmentID,
			Title:         o.Title,
			Date:          response.Day(o.Date),
			StartTime:     o.StartTime,
			Virtual:       o.Virtual,
		}
	}
	return listAppointmentsResp{Occurrences: occ}
}

type eventResp struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Date      response.Day `json:"date"`
	ClusterID string       `json:"cluster_id,omitempty"`
}

type listEventsResp struct {
	Events []eventResp `json:"events"`
}

func (h *handler) newListEventsResp(out planner.ListEventsOutput) listEventsResp {
	events := make([]eventResp, len(out.Events))
	for i, e := range out.Events {
		events[i] = eventResp{ID: e.ID, Title: e.Title, Date: response.Day(e.Date), ClusterID: e.ClusterID}
	}
	return listEventsResp{Events: events}
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

