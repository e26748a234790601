// Package export renders an analysis and reply as a downloadable text document.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MikeSquared-Agency/replymate/internal/analyzer"
)

const (
	Filename    = "replymate-analysis.txt"
	ContentType = "text/plain; charset=utf-8"

	emptyPlaceholder = "—"
	noReply          = "(generate a reply first)"
)

func Document(result analyzer.Result, reply string) string {
	var sb strings.Builder

	sb.WriteString("ReplyMate analysis\n\n")
	fmt.Fprintf(&sb, "Summary: %s\n", result.Summary)
	fmt.Fprintf(&sb, "Vibe: %s\n", result.Vibe)
	fmt.Fprintf(&sb, "Signals: %s\n", signalsJSON(result.Signals))
	fmt.Fprintf(&sb, "Red flags: %s\n", redFlags(result.RedFlags))
	sb.WriteString("\nSuggested reply:\n")
	if reply == "" {
		reply = noReply
	}
	sb.WriteString(reply)
	sb.WriteString("\n")

	return sb.String()
}

func signalsJSON(s analyzer.Signals) string {
	b, err := json.Marshal(s)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func redFlags(flags []analyzer.RedFlag) string {
	if len(flags) == 0 {
		return emptyPlaceholder
	}
	parts := make([]string, len(flags))
	for i, f := range flags {
		parts[i] = string(f)
	}
	return strings.Join(parts, ", ")
}
