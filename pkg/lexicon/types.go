package lexicon

import "regexp"

// Lexicon is the raw, file-friendly form of every lexical table used by the
// extractor, sieve, resolver and cluster matcher.
type Lexicon struct {
	Verbs               []string            `yaml:"verbs"`
	VerbPhrases         []string            `yaml:"verb_phrases"`
	BoringWords         []string            `yaml:"boring_words"`
	FillerPatterns      []string            `yaml:"filler_patterns"`
	AppointmentKeywords []string            `yaml:"appointment_keywords"`
	EventKeywords       []string            `yaml:"event_keywords"`
	UrgentWords         []string            `yaml:"urgent_words"`
	HedgeWords          []string            `yaml:"hedge_words"`
	ClusterHints        map[string][]string `yaml:"cluster_hints"`
}

// Compiled is the read-only form built once by Compile and shared by reference.
type Compiled struct {
	verbs         map[string]struct{}
	verbPattern   *regexp.Regexp
	phrasePattern *regexp.Regexp
	boring        map[string]struct{}
	fillers       []*regexp.Regexp
	eventWords    []string
	appointment   *regexp.Regexp
	event         *regexp.Regexp
	urgent        *regexp.Regexp
	hedge         *regexp.Regexp
	clusterHints  map[string]*regexp.Regexp
	clusterOrder  []string
}
