package hermes

import (
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/replymate/internal/analyzer"
	"github.com/MikeSquared-Agency/replymate/internal/compositor"
)

const (
	SubjectTranscriptSubmitted = "swarm.replymate.transcript.submitted"
	SubjectAnalysisCompleted   = "swarm.replymate.analysis.completed"
	SubjectReplyRequested      = "swarm.replymate.reply.requested"
	SubjectReplyGenerated      = "swarm.replymate.reply.generated"
)

// TranscriptSubmitted asks for an analysis of one transcript.
type TranscriptSubmitted struct {
	CorrelationID string `json:"correlation_id"`
	Transcript    string `json:"transcript"`
}

type AnalysisCompleted struct {
	EventID       string          `json:"event_id"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Analysis      analyzer.Result `json:"analysis"`
	Timestamp     time.Time       `json:"timestamp"`
}

// ReplyRequested asks for a reply. Empty tone, goal and length take the
// compositor defaults.
type ReplyRequested struct {
	CorrelationID string `json:"correlation_id"`
	compositor.Request
}

type ReplyGenerated struct {
	EventID       string    `json:"event_id"`
	CorrelationID string    `json:"correlation_id,omitempty"`
	Reply         string    `json:"reply"`
	Source        string    `json:"source"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewAnalysisCompleted(correlationID string, r analyzer.Result) AnalysisCompleted {
	return AnalysisCompleted{
		EventID:       uuid.NewString(),
		CorrelationID: correlationID,
		Analysis:      r,
		Timestamp:     time.Now().UTC(),
	}
}

func NewReplyGenerated(correlationID, reply, source string) ReplyGenerated {
	return ReplyGenerated{
		EventID:       uuid.NewString(),
		CorrelationID: correlationID,
		Reply:         reply,
		Source:        source,
		Timestamp:     time.Now().UTC(),
	}
}
