package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MikeSquared-Agency/replymate/internal/anthropic"
	"github.com/MikeSquared-Agency/replymate/internal/api"
	"github.com/MikeSquared-Agency/replymate/internal/config"
	"github.com/MikeSquared-Agency/replymate/internal/generator"
	"github.com/MikeSquared-Agency/replymate/internal/gpt"
	"github.com/MikeSquared-Agency/replymate/internal/hermes"
	"github.com/MikeSquared-Agency/replymate/internal/metrics"
	"github.com/MikeSquared-Agency/replymate/internal/processor"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("replymate starting", "port", cfg.Port)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	// Generators are tried in order; the local compositor is always the fallback.
	var gens []generator.Generator
	if cfg.GenerateURL != "" {
		gens = append(gens, generator.NewHTTPGenerator(cfg.GenerateURL))
		slog.Info("http generator ready", "url", cfg.GenerateURL)
	}
	if cfg.AnthropicAPIKey != "" {
		llm := anthropic.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)
		gens = append(gens, generator.NewAnthropicGenerator(llm))
		slog.Info("anthropic generator ready", "model", cfg.AnthropicModel)
	}
	if cfg.OpenAIAPIKey != "" {
		llm := gpt.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		gens = append(gens, generator.NewGPTGenerator(llm))
		slog.Info("openai generator ready", "model", cfg.OpenAIModel)
	}
	if len(gens) == 0 {
		slog.Warn("no generator configured, replies come from the local compositor")
	}
	replies := generator.NewService(slog.Default(), m, cfg.GenerateTimeout, gens...)

	// NATS/Hermes (optional)
	if cfg.NatsURL != "" {
		hermesClient, err := hermes.NewClient(hermes.Options{
			URL:        cfg.NatsURL,
			Token:      cfg.NatsToken,
			QueueGroup: cfg.NatsQueue,
		}, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer hermesClient.Close()
		slog.Info("NATS connected", "url", cfg.NatsURL, "queue", cfg.NatsQueue)

		proc := processor.New(replies, hermesClient, m, slog.Default())
		if err := hermesClient.Subscribe(hermes.SubjectTranscriptSubmitted, proc.HandleTranscriptSubmitted); err != nil {
			slog.Error("failed to subscribe to transcript events", "error", err)
			os.Exit(1)
		}
		if err := hermesClient.Subscribe(hermes.SubjectReplyRequested, proc.HandleReplyRequested); err != nil {
			slog.Error("failed to subscribe to reply requests", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("NATS_URL not set, running without event bus")
	}

	// HTTP API
	srv := api.NewServer(cfg.Port, cfg.APIToken, replies, m, reg)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	slog.Info("replymate ready", "port", cfg.Port, "generators", len(gens))

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP shutdown error", "error", err)
	}
	slog.Info("replymate stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
