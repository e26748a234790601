package generator

import (
	"fmt"
	"strings"

	"github.com/MikeSquared-Agency/replymate/internal/analyzer"
)

const systemPrompt = `You are ReplyMate, an assistant that drafts a reply to a chat conversation on behalf of the user.

Rules:
- Write only the reply text the user would send. No preamble, no quotes, no explanations.
- Match the requested tone and pursue the requested goal.
- Respect the requested length:
  - short: 1-3 sentences
  - medium: 4-7 sentences
  - long: 7-12 sentences
- If the user listed boundaries or conditions, include them faithfully.
- Answer in the language of the conversation.
- Never ask for or repeat passwords, bank details or other credentials.
- If the conversation is hostile, de-escalate; never insult.`

const userPromptTemplate = `Tone: %s
Goal: %s
Length: %s
Boundaries: %s

Heuristic read of the conversation:
- vibe: %s
- red flags: %s

Conversation:
<<<
%s
>>>`

func buildUserPrompt(req Request) string {
	a := analyzer.Analyze(req.Transcript)

	flags := "none"
	if len(a.RedFlags) > 0 {
		parts := make([]string, len(a.RedFlags))
		for i, f := range a.RedFlags {
			parts[i] = string(f)
		}
		flags = strings.Join(parts, ", ")
	}

	boundaries := strings.TrimSpace(req.Boundaries)
	if boundaries == "" {
		boundaries = "none"
	}

	return fmt.Sprintf(userPromptTemplate, req.Tone, req.Goal, req.Length, boundaries, a.Vibe, flags, req.Transcript)
}
