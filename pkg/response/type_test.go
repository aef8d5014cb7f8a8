package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"journal-ripples/pkg/response"
)

func TestDayMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{name: "UTC midnight", in: time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC), want: `"2024-06-14"`},
		{name: "Offset zone renders the UTC day", in: time.Date(2024, 6, 14, 22, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)), want: `"2024-06-15"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(response.Day(tt.in))
			if err != nil {
				t.Fatalf("unexpected error marshaling Day: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("Day = %s, want %s", b, tt.want)
			}
		})
	}
}

func TestDayPtrOmitsNil(t *testing.T) {
	type body struct {
		Due *response.Day `json:"due,omitempty"`
	}

	b, _ := json.Marshal(body{Due: response.DayPtr(nil)})
	if string(b) != `{}` {
		t.Errorf("nil day = %s, want {}", b)
	}

	d := time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)
	b, _ = json.Marshal(body{Due: response.DayPtr(&d)})
	if string(b) != `{"due":"2024-06-17"}` {
		t.Errorf("day = %s", b)
	}
}

func TestTimestampMarshalJSON(t *testing.T) {
	ts := time.Date(2024, 6, 10, 9, 30, 0, 0, time.FixedZone("ICT", 7*3600))
	b, err := json.Marshal(response.Timestamp(ts))
	if err != nil {
		t.Fatalf("unexpected error marshaling Timestamp: %v", err)
	}
	if string(b) != `"2024-06-10T02:30:00Z"` {
		t.Errorf("Timestamp = %s", b)
	}
}
