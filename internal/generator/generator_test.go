package generator

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/replymate/internal/anthropic"
	"github.com/MikeSquared-Agency/replymate/internal/compositor"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubGenerator struct {
	name  string
	text  string
	err   error
	calls int
	got   Request
}

func (s *stubGenerator) Name() string { return s.name }

func (s *stubGenerator) Generate(ctx context.Context, req Request) (string, error) {
	s.calls++
	s.got = req
	return s.text, s.err
}

var baseRequest = compositor.Request{
	Transcript:   "see you tomorrow",
	Tone:         compositor.ToneWarm,
	Goal:         compositor.GoalSchedule,
	Length:       compositor.LengthLong,
	Boundaries:   "No calls.",
	AskFollowups: true,
}

func TestReply_NoGeneratorsUsesCompositor(t *testing.T) {
	svc := NewService(discardLogger(), nil, time.Second)

	got := svc.Reply(context.Background(), baseRequest)
	assert.Equal(t, SourceLocal, got.Source)
	assert.Equal(t, compositor.Compose(baseRequest), got.Text)
}

func TestReply_GeneratorResultUsedVerbatim(t *testing.T) {
	g := &stubGenerator{name: "stub", text: "  Sure, 5pm works!\n"}
	svc := NewService(discardLogger(), nil, time.Second, g)

	got := svc.Reply(context.Background(), baseRequest)
	assert.Equal(t, Reply{Text: "  Sure, 5pm works!\n", Source: "stub"}, got)
	assert.Equal(t, Request{
		Transcript: "see you tomorrow",
		Tone:       "warm",
		Goal:       string(compositor.GoalSchedule),
		Length:     "long",
		Boundaries: "No calls.",
	}, g.got)
}

func TestReply_FallsThroughErrorsAndEmptyResults(t *testing.T) {
	failing := &stubGenerator{name: "failing", err: errors.New("connection refused")}
	empty := &stubGenerator{name: "empty", text: "   "}
	good := &stubGenerator{name: "good", text: "Hi!"}
	svc := NewService(discardLogger(), nil, time.Second, failing, empty, good)

	got := svc.Reply(context.Background(), baseRequest)
	assert.Equal(t, "good", got.Source)
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, empty.calls)
}

func TestReply_AllFailFallsBackSilently(t *testing.T) {
	svc := NewService(discardLogger(), nil, time.Second,
		&stubGenerator{name: "a", err: errors.New("boom")},
		&stubGenerator{name: "b"},
	)

	got := svc.Reply(context.Background(), baseRequest)
	assert.Equal(t, SourceLocal, got.Source)
	assert.Equal(t, compositor.Compose(baseRequest), got.Text)
}

func TestHTTPGenerator(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hello", req.Transcript)
		json.NewEncoder(w).Encode(map[string]string{"reply": "hey there"})
	}))
	defer server.Close()

	got, err := NewHTTPGenerator(server.URL).Generate(context.Background(), Request{Transcript: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hey there", got)
}

func TestHTTPGenerator_NonSuccessFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	gen := NewHTTPGenerator(server.URL)
	_, err := gen.Generate(context.Background(), Request{})
	require.Error(t, err)

	svc := NewService(discardLogger(), nil, time.Second, gen)
	assert.Equal(t, SourceLocal, svc.Reply(context.Background(), baseRequest).Source)
}

func TestAnthropicGenerator(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			System   string              `json:"system"`
			Messages []anthropic.Message `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, systemPrompt, body.System)
		require.Len(t, body.Messages, 1)
		assert.Contains(t, body.Messages[0].Content, "Goal: Set boundaries")
		assert.Contains(t, body.Messages[0].Content, "vibe: anger/conflict")

		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{{"type": "text", "text": "Let's keep this respectful."}},
		})
	}))
	defer server.Close()

	llm := anthropic.NewClient("test-key", "test-model")
	llm.SetBaseURL(server.URL)

	got, err := NewAnthropicGenerator(llm).Generate(context.Background(), Request{
		Transcript: "you idiot, I'm angry",
		Tone:       "confident",
		Goal:       "Set boundaries",
		Length:     "short",
	})
	require.NoError(t, err)
	assert.Equal(t, "Let's keep this respectful.", got)
}

func TestBuildUserPrompt(t *testing.T) {
	got := buildUserPrompt(Request{Transcript: "send me your password", Tone: "warm", Goal: "x", Length: "short"})
	assert.Contains(t, got, "Boundaries: none")
	assert.Contains(t, got, "red flags: financial/privacy risk")
	assert.Contains(t, got, "send me your password")
}
