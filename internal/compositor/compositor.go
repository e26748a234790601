package compositor

import (
	"regexp"
	"strings"

	"github.com/MikeSquared-Agency/replymate/internal/analyzer"
)

var sentenceBreak = regexp.MustCompile(`\.\s+`)

// Compose builds a templated reply. It is total: unknown tones, goals and
// lengths degrade to their fallbacks.
func Compose(req Request) string {
	vibe := analyzer.AnalyzeReduced(req.Transcript).Vibe

	blocks := make([]string, 0, 4)
	if e, ok := empathy[vibe]; ok {
		blocks = append(blocks, e)
	}
	blocks = append(blocks, GoalTemplate(req.Goal))
	if b := strings.TrimSpace(req.Boundaries); b != "" {
		blocks = append(blocks, b)
	}
	if req.AskFollowups {
		blocks = append(blocks, followupBlock)
	}

	reply := Opener(req.Tone) + " " + strings.Join(blocks, " ")
	return Truncate(reply, req.Length)
}

// Opener returns the lead-in for tone, or the neutral one for unknown tones.
func Opener(tone Tone) string {
	candidates, ok := openers[tone]
	if !ok {
		candidates = openers[ToneNeutral]
	}
	return candidates[0]
}

// GoalTemplate returns the body sentence for goal, or the generic fallback.
func GoalTemplate(goal Goal) string {
	if t, ok := goalTemplates[goal]; ok {
		return t
	}
	return fallbackGoalTemplate
}

// Truncate keeps the first N sentence fragments for short and medium replies
// and closes the result with a single period. Long replies are untouched.
func Truncate(reply string, length Length) string {
	limit, ok := fragmentLimits[length]
	if !ok {
		return reply
	}
	fragments := sentenceBreak.Split(reply, -1)
	if len(fragments) > limit {
		fragments = fragments[:limit]
	}
	out := strings.Join(fragments, ". ")
	return strings.TrimSuffix(out, ".") + "."
}

// AppendQuestion adds the polite clarification addendum to a non-empty reply.
func AppendQuestion(reply string) string {
	if reply == "" {
		return reply
	}
	return reply + "\n\n" + questionAddendum
}
