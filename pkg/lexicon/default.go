package lexicon

var defaultVerbs = []string{
	"add", "answer", "apply", "arrange", "ask", "attend", "back", "bake", "book", "bring",
	"build", "buy", "call", "cancel", "change", "check", "clean", "clear", "close", "collect",
	"confirm", "contact", "cook", "copy", "create", "deliver", "deploy", "design", "do", "draft",
	"drop", "edit", "email", "feed", "file", "finish", "fix", "follow", "get", "give",
	"go", "grab", "help", "hire", "invite", "join", "learn", "leave", "make", "mail",
	"meet", "message", "move", "order", "organize", "pack", "paint", "pay", "pick", "plan",
	"post", "prepare", "print", "publish", "read", "remind", "renew", "repair", "reply", "report",
	"research", "reschedule", "return", "review", "run", "schedule", "sell", "send", "set", "share",
	"ship", "shop", "sign", "sort", "start", "study", "submit", "take", "talk", "test",
	"text", "tidy", "update", "visit", "walk", "wash", "water", "work", "write",
	// appointment and occasion nouns standing in for the action
	"anniversary", "appointment", "birthday", "ceremony", "coffee", "concert", "deadline",
	"dinner", "funeral", "graduation", "lunch", "meeting", "party", "recital", "wedding",
}

var defaultVerbPhrases = []string{
	"clean up", "drop off", "figure out", "fill out", "follow up", "look into",
	"pick up", "reach out", "set up", "sign up", "sort out", "take out", "write up",
}

var defaultBoringWords = []string{
	"today", "tomorrow", "later", "please", "soon", "now", "maybe", "stuff", "things",
	"something", "whatever", "ok", "okay", "yes", "no", "eventually",
}

var defaultFillerPatterns = []string{
	`(?i)\bidk\b`,
	`(?i)^\s*(something|anything|stuff|things)(\s+(like\s+)?that)?\s*[.!?]*$`,
	`(?i)\b(lol|haha+|ugh+|meh|hmm+)\s*[.!?]*$`,
	`(?i)^\s*(do|get|fix)\s+(it|that|this|stuff|things)\s*[.!?]*$`,
	`(?i)\bor\s+something\s*[.!?]*$`,
}

var defaultAppointmentKeywords = []string{
	"appointment", "meeting", "call", "lunch", "dinner", "coffee", "interview",
	"dentist", "doctor", "checkup", "session", "standup", "sync",
}

var defaultEventKeywords = []string{
	"birthday", "anniversary", "wedding", "graduation", "funeral", "party",
	"concert", "recital", "ceremony", "launch", "deadline",
}

var defaultUrgentWords = []string{"asap", "urgent", "urgently", "immediately", "critical", "must"}

var defaultHedgeWords = []string{"probably", "maybe", "might", "perhaps", "possibly"}

var defaultClusterHints = map[string][]string{
	"health":  {"doctor", "dentist", "gym", "workout", "run", "meds", "prescription", "therapy"},
	"home":    {"clean", "laundry", "dishes", "plants", "groceries", "rent", "repair", "garden"},
	"work":    {"slides", "deck", "report", "meeting", "client", "deploy", "standup", "review"},
	"finance": {"pay", "bill", "invoice", "tax", "taxes", "bank", "budget", "license"},
	"family":  {"mom", "dad", "kids", "birthday", "anniversary", "grandma", "grandpa"},
}

// Default returns a fresh copy of the built-in tables.
func Default() Lexicon {
	hints := make(map[string][]string, len(defaultClusterHints))
	for k, v := range defaultClusterHints {
		hints[k] = clone(v)
	}
	return Lexicon{
		Verbs:               clone(defaultVerbs),
		VerbPhrases:         clone(defaultVerbPhrases),
		BoringWords:         clone(defaultBoringWords),
		FillerPatterns:      clone(defaultFillerPatterns),
		AppointmentKeywords: clone(defaultAppointmentKeywords),
		EventKeywords:       clone(defaultEventKeywords),
		UrgentWords:         clone(defaultUrgentWords),
		HedgeWords:          clone(defaultHedgeWords),
		ClusterHints:        hints,
	}
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
