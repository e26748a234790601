package compositor

// Tone selects the reply opener.
type Tone string

const (
	ToneNeutral    Tone = "neutral"
	ToneWarm       Tone = "warm"
	ToneConfident  Tone = "confident"
	ToneApologetic Tone = "apologetic"
	ToneFunny      Tone = "funny"

	DefaultTone = ToneWarm
)

// Goal selects the body template. Unknown goals fall back to a generic template.
type Goal string

const (
	GoalCalm       Goal = "Calm the situation"
	GoalSchedule   Goal = "Schedule a meeting"
	GoalBoundaries Goal = "Set boundaries"
	GoalClarify    Goal = "Ask for clarification"
	GoalSales      Goal = "Sales response"
	GoalFlirt      Goal = "Flirty / friendly response"
	GoalDisengage  Goal = "End contact (politely)"

	DefaultGoal = GoalCalm
)

// Length controls fragment truncation of the composed reply.
type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"

	DefaultLength = LengthShort
)

// Request is everything the compositor needs to build one reply.
type Request struct {
	Transcript   string `json:"transcript"`
	Tone         Tone   `json:"tone"`
	Goal         Goal   `json:"goal"`
	Length       Length `json:"length"`
	Boundaries   string `json:"boundaries,omitempty"`
	AskFollowups bool   `json:"ask_followups"`
}

// WithDefaults fills empty tone, goal and length with their defaults.
// Non-empty values are kept even when unknown; Compose handles those.
func (r Request) WithDefaults() Request {
	if r.Tone == "" {
		r.Tone = DefaultTone
	}
	if r.Goal == "" {
		r.Goal = DefaultGoal
	}
	if r.Length == "" {
		r.Length = DefaultLength
	}
	return r
}

// Option is a selectable enum value with a display label.
type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

func Tones() []Option {
	return []Option{
		{Key: string(ToneNeutral), Label: "Neutral"},
		{Key: string(ToneWarm), Label: "Warm / empathetic"},
		{Key: string(ToneConfident), Label: "Confident"},
		{Key: string(ToneApologetic), Label: "Apologetic"},
		{Key: string(ToneFunny), Label: "Humorous (not every time)"},
	}
}

func Lengths() []Option {
	return []Option{
		{Key: string(LengthShort), Label: "Short (1-3 sentences)"},
		{Key: string(LengthMedium), Label: "Medium (4-7 sentences)"},
		{Key: string(LengthLong), Label: "Long (7-12 sentences)"},
	}
}

func Goals() []Goal {
	return []Goal{GoalCalm, GoalSchedule, GoalBoundaries, GoalClarify, GoalSales, GoalFlirt, GoalDisengage}
}
