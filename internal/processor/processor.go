package processor

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/MikeSquared-Agency/replymate/internal/analyzer"
	"github.com/MikeSquared-Agency/replymate/internal/generator"
	"github.com/MikeSquared-Agency/replymate/internal/hermes"
	"github.com/MikeSquared-Agency/replymate/internal/metrics"
)

// Publisher is the part of the hermes client the processor needs.
type Publisher interface {
	Publish(subject string, data any) error
}

// Processor answers transcript and reply requests arriving over NATS.
type Processor struct {
	replies *generator.Service
	pub     Publisher
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func New(replies *generator.Service, pub Publisher, m *metrics.Metrics, logger *slog.Logger) *Processor {
	return &Processor{
		replies: replies,
		pub:     pub,
		metrics: m,
		logger:  logger,
	}
}

// HandleTranscriptSubmitted is the NATS handler for swarm.replymate.transcript.submitted.
func (p *Processor) HandleTranscriptSubmitted(subject string, data []byte) {
	var evt hermes.TranscriptSubmitted
	if err := json.Unmarshal(data, &evt); err != nil {
		p.logger.Error("failed to parse transcript event", "subject", subject, "error", err)
		return
	}

	result := analyzer.Analyze(evt.Transcript)
	p.metrics.ObserveAnalysis(result)

	if err := p.pub.Publish(hermes.SubjectAnalysisCompleted, hermes.NewAnalysisCompleted(evt.CorrelationID, result)); err != nil {
		p.logger.Error("failed to publish analysis", "correlation_id", evt.CorrelationID, "error", err)
		return
	}

	p.logger.Info("transcript analyzed",
		"correlation_id", evt.CorrelationID,
		"vibe", result.Vibe,
		"red_flags", len(result.RedFlags),
		"transcript_len", result.Metrics.LengthChars,
	)
}

// HandleReplyRequested is the NATS handler for swarm.replymate.reply.requested.
func (p *Processor) HandleReplyRequested(subject string, data []byte) {
	var evt hermes.ReplyRequested
	if err := json.Unmarshal(data, &evt); err != nil {
		p.logger.Error("failed to parse reply request", "subject", subject, "error", err)
		return
	}

	reply := p.replies.Reply(context.Background(), evt.Request.WithDefaults())

	if err := p.pub.Publish(hermes.SubjectReplyGenerated, hermes.NewReplyGenerated(evt.CorrelationID, reply.Text, reply.Source)); err != nil {
		p.logger.Error("failed to publish reply", "correlation_id", evt.CorrelationID, "error", err)
		return
	}

	p.logger.Info("reply generated",
		"correlation_id", evt.CorrelationID,
		"source", reply.Source,
		"tone", evt.Tone,
		"goal", evt.Goal,
	)
}
