package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MikeSquared-Agency/replymate/internal/analyzer"
	"github.com/MikeSquared-Agency/replymate/internal/compositor"
	"github.com/MikeSquared-Agency/replymate/internal/export"
	"github.com/MikeSquared-Agency/replymate/internal/generator"
)

// maxBody bounds request bodies; transcripts are pasted text.
const maxBody = 1 << 20

type AnalyzeRequest struct {
	Transcript string `json:"transcript"`
}

// ReplyRequest mirrors compositor.Request; AskFollowups defaults to true.
type ReplyRequest struct {
	Transcript   string `json:"transcript"`
	Tone         string `json:"tone"`
	Goal         string `json:"goal"`
	Length       string `json:"length"`
	Boundaries   string `json:"boundaries"`
	AskFollowups *bool  `json:"ask_followups,omitempty"`
}

type QuestionRequest struct {
	Reply string `json:"reply"`
}

type ExportRequest struct {
	Transcript string `json:"transcript"`
	Reply      string `json:"reply"`
}

type OptionsResponse struct {
	Tones   []compositor.Option `json:"tones"`
	Goals   []compositor.Goal   `json:"goals"`
	Lengths []compositor.Option `json:"lengths"`
}

func (r ReplyRequest) toCompositor() compositor.Request {
	followups := true
	if r.AskFollowups != nil {
		followups = *r.AskFollowups
	}
	return compositor.Request{
		Transcript:   r.Transcript,
		Tone:         compositor.Tone(r.Tone),
		Goal:         compositor.Goal(r.Goal),
		Length:       compositor.Length(r.Length),
		Boundaries:   r.Boundaries,
		AskFollowups: followups,
	}.WithDefaults()
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return false
	}
	return true
}

func (s *Server) options(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, OptionsResponse{
		Tones:   compositor.Tones(),
		Goals:   compositor.Goals(),
		Lengths: compositor.Lengths(),
	})
}

// analyze handles POST /api/v1/analyze
func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if !decode(w, r, &req) {
		return
	}
	result := analyzer.Analyze(req.Transcript)
	s.metrics.ObserveAnalysis(result)
	writeJSON(w, http.StatusOK, result)
}

// reply handles POST /api/v1/reply
func (s *Server) reply(w http.ResponseWriter, r *http.Request) {
	var req ReplyRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, s.replies.Reply(r.Context(), req.toCompositor()))
}

// replyQuestion handles POST /api/v1/reply/question
func (s *Server) replyQuestion(w http.ResponseWriter, r *http.Request) {
	var req QuestionRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, generator.Reply{
		Text:   compositor.AppendQuestion(req.Reply),
		Source: generator.SourceLocal,
	})
}

// exportDocument handles POST /api/v1/export
func (s *Server) exportDocument(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if !decode(w, r, &req) {
		return
	}
	doc := export.Document(analyzer.Analyze(req.Transcript), req.Reply)

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}
