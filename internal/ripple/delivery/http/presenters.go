package http

import (
	"time"

	"journal-ripples/internal/model"
	"journal-ripples/internal/ripple"
	"journal-ripples/pkg/response"
	"journal-ripples/pkg/rrule"
)

// --- Request DTOs ---

type listReq struct {
	Date      string `form:"date"`
	EntryID   string `form:"entry_id"`
	ClusterID string `form:"cluster_id"`
	Status    string `form:"status" binding:"omitempty,oneof=pending approved dismissed"`

	date time.Time
}

func (r *listReq) validate() error {
	if r.Date == "" {
		return nil
	}
	d, err := time.Parse(rrule.DateFormat, r.Date)
	if err != nil {
		return errInvalidDate
	}
	r.date = d
	return nil
}

func (r listReq) toInput() ripple.ListInput {
	return ripple.ListInput{
		Date:      r.date,
		EntryID:   r.EntryID,
		ClusterID: r.ClusterID,
		Status:    model.RippleStatus(r.Status),
	}
}

type approveReq struct {
	ID        string `json:"-"` // populated from URI param
	ClusterID string `json:"cluster_id"`
	DueDate   string `json:"due_date"`

	due *time.Time
}

func (r *approveReq) validate() error {
	if r.ID == "" {
		return errMissingID
	}
	if r.DueDate == "" {
		return nil
	}
	d, err := time.Parse(rrule.DateFormat, r.DueDate)
	if err != nil {
		return errInvalidDate
	}
	r.due = &d
	return nil
}

func (r approveReq) toInput() ripple.ApproveInput {
	return ripple.ApproveInput{ID: r.ID, ClusterID: r.ClusterID, DueDate: r.due}
}

type listSuggestedReq struct {
	Status  string `form:"status" binding:"omitempty,oneof=pending accepted rejected"`
	EntryID string `form:"entry_id"`
}

func (r listSuggestedReq) toInput() ripple.ListSuggestedTasksInput {
	return ripple.ListSuggestedTasksInput{Status: model.SuggestedTaskStatus(r.Status), EntryID: r.EntryID}
}

// --- Response DTOs ---

type rippleResp struct {
	ID              string        `json:"id"`
	EntryID         string        `json:"entry_id"`
	EntryDate       response.Day  `json:"entry_date"`
	Text            string        `json:"text"`
	OriginalContext string        `json:"original_context"`
	Type            string        `json:"type"`
	Confidence      float64       `json:"confidence"`
	Band            string        `json:"band"`
	Status          string        `json:"status"`
	DueDate         *response.Day `json:"due_date,omitempty"`
	DueTime         string        `json:"due_time,omitempty"`
	Recurrence      string        `json:"recurrence,omitempty"`
	RepeatLabel     string        `json:"repeat_label,omitempty"`
	ClusterID       string        `json:"cluster_id,omitempty"`
	TaskID          string        `json:"task_id,omitempty"`
	AppointmentID   string        `json:"appointment_id,omitempty"`
	EventID         string        `json:"event_id,omitempty"`
}

func newRippleResp(rp model.Ripple) rippleResp {
	return rippleResp{
		ID:              rp.ID,
		EntryID:         rp.EntryID,
		EntryDate:       response.Day(rp.EntryDate),
		Text:            rp.Text,
		OriginalContext: rp.OriginalContext,
		Type:            string(rp.Type),
		Confidence:      rp.Confidence,
		Band:            string(rp.Band),
		Status:          string(rp.Status),
		DueDate:         response.DayPtr(rp.DueDate),
		DueTime:         rp.DueTime,
		Recurrence:      rp.Recurrence,
		RepeatLabel:     repeatLabel(rp.Recurrence),
		ClusterID:       rp.ClusterID,
		TaskID:          rp.TaskID,
		AppointmentID:   rp.AppointmentID,
		EventID:         rp.EventID,
	}
}

type listResp struct {
	Ripples []rippleResp `json:"ripples"`
}

func (h *handler) newListResp(out ripple.ListOutput) listResp {
	items := make([]rippleResp, len(out.Ripples))
	for i, rp := range out.Ripples {
		items[i] = newRippleResp(rp)
	}
	return listResp{Ripples: items}
}

type approveResp struct {
	Ripple     rippleResp `json:"ripple"`
	EntityType string     `json:"entity_type"`
	EntityID   string     `json:"entity_id"`
}

func (h *handler) newApproveResp(out ripple.ApproveOutput) approveResp {
	resp := approveResp{Ripple: newRippleResp(out.Ripple)}
	switch {
	case out.Task != nil:
		resp.EntityType, resp.EntityID = "task", out.Task.ID
	case out.Appointment != nil:
		resp.EntityType, resp.EntityID = "appointment", out.Appointment.ID
	case out.Event != nil:
		resp.EntityType, resp.EntityID = "importantEvent", out.Event.ID
	}
	return resp
}

type suggestedTaskResp struct {
	ID          string        `json:"id"`
	RippleID    string        `json:"ripple_id"`
	EntryID     string        `json:"entry_id"`
	Title       string        `json:"title"`
	Priority    string        `json:"priority"`
	DueDate     *response.Day `json:"due_date,omitempty"`
	RepeatLabel string        `json:"repeat_label,omitempty"`
	ClusterID   string        `json:"cluster_id,omitempty"`
	Status      string        `json:"status"`
	TaskID      string        `json:"task_id,omitempty"`
}

func newSuggestedTaskResp(st model.SuggestedTask) suggestedTaskResp {
	return suggestedTaskResp{
		ID:          st.ID,
		RippleID:    st.RippleID,
		EntryID:     st.EntryID,
		Title:       st.Title,
		Priority:    string(st.Priority),
		DueDate:     response.DayPtr(st.DueDate),
		RepeatLabel: st.RepeatLabel,
		ClusterID:   st.ClusterID,
		Status:      string(st.Status),
		TaskID:      st.TaskID,
	}
}

type listSuggestedResp struct {
	SuggestedTasks []suggestedTaskResp `json:"suggested_tasks"`
}

func (h *handler) newListSuggestedResp(out ripple.ListSuggestedTasksOutput) listSuggestedResp {
	items := make([]suggestedTaskResp, len(out.SuggestedTasks))
	for i, st := range out.SuggestedTasks {
		items[i] = newSuggestedTaskResp(st)
	}
	return listSuggestedResp{SuggestedTasks: items}
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
