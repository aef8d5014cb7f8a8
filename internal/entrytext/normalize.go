package entrytext

import (
	"regexp"
	"strings"

	"journal-ripples/internal/model"
)

const (
	// Captures indent, checkbox state and text.
	// Example: "  - [x] Task name" → groups: ["  ", "x", "Task name"]
	CheckboxPattern = `(?m)^(\s*)[-*+] \[([ xX])\] (.+)$`

	// TaskLead is prepended to unchecked checklist items so they read as task phrasing.
	TaskLead = "I need to "
)

var (
	checkbox       = regexp.MustCompile(CheckboxPattern)
	fencedCode     = regexp.MustCompile("(?s)```.*?```")
	inlineCode     = regexp.MustCompile("`[^`]+`")
	heading        = regexp.MustCompile(`(?m)^\s{0,3}#{1,6}\s+`)
	quote          = regexp.MustCompile(`(?m)^\s*>\s?`)
	bullet         = regexp.MustCompile(`(?m)^\s*(?:[-*+]|\d+[.)])\s+`)
	link           = regexp.MustCompile(`!?\[([^\]]*)\]\([^)]*\)`)
	emphasis       = regexp.MustCompile(`(\*{1,3}|_{2,3}|~~)([^*_~\n]+)(\*{1,3}|_{2,3}|~~)`)
	horizontalRule = regexp.MustCompile(`(?m)^\s*(?:[-*_]\s*){3,}$`)
	blanks         = regexp.MustCompile(`[ \t\f\v\p{Zs}]+`)
)

// Normalize derives the plain text analysed for an entry body. Unchecked
// checklist items become task sentences, checked ones are dropped, and every
// non-empty line ends with a sentence terminator.
func Normalize(body string, format model.EntryFormat) string {
	text := body
	switch format {
	case model.FormatHTML:
		text = htmlToText(body)
	case model.FormatMarkdown:
		text = stripMarkdown(body)
	}
	text = checklistToSentences(text)

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(blanks.ReplaceAllString(line, " "))
		if line == "" {
			continue
		}
		if !strings.ContainsAny(line[len(line)-1:], ".!?") {
			line += "."
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// stripMarkdown removes code first so fake checkboxes in examples are ignored.
func stripMarkdown(s string) string {
	s = fencedCode.ReplaceAllString(s, "")
	s = inlineCode.ReplaceAllString(s, "")
	s = horizontalRule.ReplaceAllString(s, "")
	s = heading.ReplaceAllString(s, "")
	s = quote.ReplaceAllString(s, "")
	s = link.ReplaceAllString(s, "$1")
	s = emphasis.ReplaceAllString(s, "$2")
	return s
}

func checklistToSentences(s string) string {
	s = checkbox.ReplaceAllStringFunc(s, func(line string) string {
		m := checkbox.FindStringSubmatch(line)
		if len(m) != 4 || strings.EqualFold(m[2], "x") {
			return ""
		}
		item := strings.TrimSpace(m[3])
		if item == "" {
			return ""
		}
		return TaskLead + lowerFirst(item)
	})
	return bullet.ReplaceAllString(s, "")
}

func lowerFirst(s string) string {
	if s == "" || strings.HasPrefix(s, "I ") {
		return s
	}
	first, rest := s[:1], s[1:]
	if rest != "" && strings.ToUpper(rest[:1]) == rest[:1] && strings.ToLower(rest[:1]) != rest[:1] {
		// Acronym such as "DMV", keep it.
		return s
	}
	return strings.ToLower(first) + rest
}
