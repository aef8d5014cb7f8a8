package datemath_test

import (
	"testing"
	"time"

	"journal-ripples/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	p, err := datemath.NewParser("America/New_York")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}
	if p.Location().String() != "America/New_York" {
		t.Errorf("Location() = %s", p.Location())
	}

	if _, err := datemath.NewParser("Mars/Olympus_Mons"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC) // Monday
	day := func(m time.Month, d int) time.Time { return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		relative string
		want     time.Time
		wantErr  bool
	}{
		{relative: "today", want: day(6, 10)},
		{relative: "Tomorrow", want: day(6, 11)},
		{relative: "yesterday", want: day(6, 9)},
		{relative: "in 3 days", want: day(6, 13)},
		{relative: "in two weeks", want: day(6, 24)},
		{relative: "in 1 month", want: day(7, 10)},
		{relative: "next monday", want: day(6, 17)},
		{relative: "next friday", want: day(6, 14)},
		{relative: "next week", want: day(6, 17)},
		{relative: "june 20", want: day(6, 20)},
		{relative: "2024-07-04", want: day(7, 4)},
		{relative: "whenever", want: day(6, 10)},
		{relative: "in a few days", want: base, wantErr: true},
		{relative: "next funday", want: base, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.relative, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, base)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseReturnsMidnightInParserZone(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Ho_Chi_Minh")
	// 20:00 UTC on Monday is already Tuesday in UTC+7.
	base := time.Date(2024, 6, 10, 20, 0, 0, 0, time.UTC)

	got, err := parser.Parse("tomorrow", base)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	want := time.Date(2024, 6, 12, 0, 0, 0, 0, parser.Location())
	if !got.Equal(want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}
