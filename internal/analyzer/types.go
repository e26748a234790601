package analyzer

// Vibe is the single coarse emotional classification of a transcript.
type Vibe string

const (
	VibeNeutral   Vibe = "neutral"
	VibeConflict  Vibe = "anger/conflict"
	VibeSensitive Vibe = "sadness/sensitivity"
	VibeAffection Vibe = "affection"
	VibeUrgency   Vibe = "urgency"
)

// RedFlag is a risk annotation surfaced next to the vibe.
type RedFlag string

const (
	FlagConflict  RedFlag = "raised tone / conflict language"
	FlagTooLong   RedFlag = "text too long, summarize"
	FlagFinancial RedFlag = "financial/privacy risk"
)

// Signal names a lexicon-backed score.
type Signal string

const (
	SignalAnger     Signal = "anger"
	SignalSadness   Signal = "sadness"
	SignalAffection Signal = "affection"
	SignalUrgency   Signal = "urgency"
)

// Metrics are structural counts taken from the raw, not lower-cased, text.
type Metrics struct {
	LengthChars         int  `json:"length_chars"`
	LineCount           int  `json:"line_count"`
	HasQuestion         bool `json:"has_question"`
	ExclaimCount        int  `json:"exclaim_count"`
	EmojiCount          int  `json:"emoji_count"`
	UppercaseBurstCount int  `json:"uppercase_burst_count"`
}

type Signals struct {
	Anger     int `json:"anger"`
	Sadness   int `json:"sadness"`
	Affection int `json:"affection"`
	Urgency   int `json:"urgency"`
	Question  int `json:"question"`
}

// Result is the full analysis of one transcript. It is replaced, never mutated.
type Result struct {
	Metrics  Metrics   `json:"metrics"`
	Signals  Signals   `json:"signals"`
	Vibe     Vibe      `json:"vibe"`
	RedFlags []RedFlag `json:"red_flags"`
	Summary  string    `json:"summary"`
}
