package entrytext

import (
	"testing"

	"journal-ripples/internal/model"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		format model.EntryFormat
		want   string
	}{
		{
			name:   "Plain text gets terminators",
			body:   "Remember to send the slides this Friday\n\n  Long day   today!",
			format: model.FormatText,
			want:   "Remember to send the slides this Friday.\nLong day today!",
		},
		{
			name:   "Markdown checklist",
			body:   "## Todo\n- [ ] Call the plumber\n- [x] Pay rent\n- [ ] DMV renewal",
			format: model.FormatMarkdown,
			want:   "Todo.\nI need to call the plumber.\nI need to DMV renewal.",
		},
		{
			name:   "Markdown formatting and code are stripped",
			body:   "I **really** need to [book](https://example.com) the flight.\n```\n- [ ] not a task\n```\nUse `make` later",
			format: model.FormatMarkdown,
			want:   "I really need to book the flight.\nUse later.",
		},
		{
			name:   "HTML blocks and entities",
			body:   "<p>Dinner with Alex on Saturday</p><p>Don&#39;t forget to buy flowers<br>ok</p>",
			format: model.FormatHTML,
			want:   "Dinner with Alex on Saturday.\nDon't forget to buy flowers.\nok.",
		},
		{
			name:   "HTML checkboxes",
			body:   `<ul><li><input type="checkbox"> Water the plants</li><li><input type="checkbox" checked> Walk the dog</li></ul>`,
			format: model.FormatHTML,
			want:   "I need to water the plants.",
		},
		{
			name:   "Empty body",
			body:   "   ",
			format: model.FormatText,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.body, tt.format); got != tt.want {
				t.Errorf("Normalize() = %q, want %q", got, tt.want)
			}
		})
	}
}
