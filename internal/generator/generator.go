package generator

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/MikeSquared-Agency/replymate/internal/compositor"
	"github.com/MikeSquared-Agency/replymate/internal/metrics"
)

// SourceLocal marks a reply built by the local compositor.
const SourceLocal = "local"

// Request is what an external generator receives. Follow-up preference is
// local-only and not forwarded.
type Request struct {
	Transcript string `json:"transcript"`
	Tone       string `json:"tone"`
	Goal       string `json:"goal"`
	Length     string `json:"length"`
	Boundaries string `json:"boundaries"`
}

// Generator produces a reply from an external service. An empty string
// means "no result".
type Generator interface {
	Name() string
	Generate(ctx context.Context, req Request) (string, error)
}

type Reply struct {
	Text   string `json:"reply"`
	Source string `json:"source"`
}

// Service tries each generator in order and falls back to local composition.
// Generator failures are logged, never returned.
type Service struct {
	generators []Generator
	timeout    time.Duration
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewService(logger *slog.Logger, m *metrics.Metrics, timeout time.Duration, gens ...Generator) *Service {
	return &Service{
		generators: gens,
		timeout:    timeout,
		metrics:    m,
		logger:     logger,
	}
}

func (s *Service) Reply(ctx context.Context, req compositor.Request) Reply {
	genReq := Request{
		Transcript: req.Transcript,
		Tone:       string(req.Tone),
		Goal:       string(req.Goal),
		Length:     string(req.Length),
		Boundaries: req.Boundaries,
	}

	for _, g := range s.generators {
		if text := s.try(ctx, g, genReq); text != "" {
			s.metrics.ObserveReply(g.Name())
			return Reply{Text: text, Source: g.Name()}
		}
	}

	s.metrics.ObserveReply(SourceLocal)
	return Reply{Text: compositor.Compose(req), Source: SourceLocal}
}

func (s *Service) try(ctx context.Context, g Generator, req Request) string {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := g.Generate(ctx, req)
	elapsed := time.Since(start).Seconds()

	switch {
	case err != nil:
		s.metrics.ObserveGenerator(g.Name(), "error", elapsed)
		s.logger.Warn("generator failed, falling back", "generator", g.Name(), "error", err)
		return ""
	case strings.TrimSpace(text) == "":
		s.metrics.ObserveGenerator(g.Name(), "empty", elapsed)
		s.logger.Debug("generator returned no result", "generator", g.Name())
		return ""
	}
	s.metrics.ObserveGenerator(g.Name(), "ok", elapsed)
	return text
}
