package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"journal-ripples/internal/model"
	"journal-ripples/pkg/rrule"
)

var (
	errUnknownEvent = errors.New("unknown event")
	errMissingOwner = errors.New("user_id is required")
	errMissingEntry = errors.New("entry is required")
	errInvalidEntry = errors.New("invalid entry")
)

// parsePayload decodes and checks an entry event body.
func parsePayload(body []byte) (entryPayload, error) {
	var p entryPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return p, fmt.Errorf("failed to parse entry event: %w", err)
	}

	switch p.Event {
	case EventEntryCreated, EventEntryUpdated:
		if p.Entry == nil {
			return p, errMissingEntry
		}
		if p.UserID == "" {
			p.UserID = p.Entry.UserID
		}
	case EventEntryDeleted:
		if p.EntryID == "" && p.Entry != nil {
			p.EntryID = p.Entry.ID
		}
		if p.EntryID == "" {
			return p, errMissingEntry
		}
	default:
		return p, fmt.Errorf("%w: %q", errUnknownEvent, p.Event)
	}

	if p.UserID == "" {
		return p, errMissingOwner
	}
	return p, nil
}

// toModel converts the wire entry. The owner of the event wins over the
// entry's own user id.
func (d entryData) toModel(userID string) (model.Entry, error) {
	date, err := parseEntryDate(d.Date)
	if err != nil {
		return model.Entry{}, err
	}

	format := model.EntryFormat(d.Format)
	switch format {
	case "":
		format = model.FormatText
	case model.FormatText, model.FormatHTML, model.FormatMarkdown:
	default:
		return model.Entry{}, fmt.Errorf("%w: unknown format %q", errInvalidEntry, d.Format)
	}

	return model.Entry{
		ID:        d.ID,
		UserID:    userID,
		Date:      date,
		Body:      d.Body,
		Format:    format,
		Mood:      d.Mood,
		Tags:      d.Tags,
		ClusterID: d.ClusterID,
	}, nil
}

// parseEntryDate keeps the wall-clock day of the journal date.
func parseEntryDate(s string) (time.Time, error) {
	if d, err := time.Parse(rrule.DateFormat, s); err == nil {
		return d, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", errInvalidEntry, s)
	}
	return rrule.Day(t), nil
}
