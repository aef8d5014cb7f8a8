package lexicon_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"journal-ripples/pkg/lexicon"
)

func TestDefaultIsACopy(t *testing.T) {
	a := lexicon.Default()
	a.Verbs[0] = "mutated"
	a.ClusterHints["work"][0] = "mutated"

	b := lexicon.Default()
	if b.Verbs[0] == "mutated" || b.ClusterHints["work"][0] == "mutated" {
		t.Fatalf("Default() shares backing arrays between calls")
	}
}

func TestFindVerb(t *testing.T) {
	c := lexicon.MustDefault()

	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{text: "send the slides", want: "send", ok: true},
		{text: "sending the slides", want: "send", ok: true},
		{text: "renewed the license", want: "renew", ok: true},
		{text: "follow up with Sam", want: "follow up", ok: true},
		{text: "resend later", ok: false},
		{text: "the weather was grey", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := c.FindVerb(tt.text)
			if ok != tt.ok || got != tt.want {
				t.Errorf("FindVerb(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestKeywordMatchers(t *testing.T) {
	c := lexicon.MustDefault()

	if !c.IsBoring("Later") {
		t.Errorf("IsBoring(Later) = false")
	}
	if !c.HasAppointmentKeyword("Dentist at 3pm") {
		t.Errorf("HasAppointmentKeyword() missed dentist")
	}
	if !c.HasEventKeyword("Mia's birthday on June 5") {
		t.Errorf("HasEventKeyword() missed birthday")
	}
	if !c.IsHedged("maybe call the bank") {
		t.Errorf("IsHedged() missed maybe")
	}
	if !c.IsUrgent("pay rent ASAP") {
		t.Errorf("IsUrgent() missed asap")
	}
	if _, ok := c.MatchFiller("idk whatever"); !ok {
		t.Errorf("MatchFiller() missed idk")
	}
}

func TestClusterHits(t *testing.T) {
	c := lexicon.MustDefault()
	got := c.ClusterHits("pay the bill and the tax before the client meeting")
	want := map[string]int{"finance": 3, "work": 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ClusterHits() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	content := `
verbs: [feed, walk]
cluster_hints:
  pets: [dog, cat, vet]
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write lexicon: %v", err)
	}

	lex, err := lexicon.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"feed", "walk"}, lex.Verbs); diff != "" {
		t.Errorf("Verbs mismatch (-want +got):\n%s", diff)
	}
	if len(lex.BoringWords) == 0 {
		t.Errorf("BoringWords not inherited from defaults")
	}
	if _, ok := lex.ClusterHints["work"]; !ok {
		t.Errorf("default cluster hints dropped by merge")
	}

	c, err := lex.Compile()
	if err != nil {
		t.Fatalf("Compile() unexpected error: %v", err)
	}
	if _, ok := c.FindVerb("send the slides"); ok {
		t.Errorf("FindVerb() matched a verb absent from the override")
	}
	if _, ok := c.FindVerb("walk the dog"); !ok {
		t.Errorf("FindVerb() missed an override verb")
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := lexicon.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("LoadFile() on a missing file: expected error")
	}

	lex := lexicon.Default()
	lex.FillerPatterns = []string{"("}
	if _, err := lex.Compile(); err == nil {
		t.Errorf("Compile() with a broken filler pattern: expected error")
	}
}
