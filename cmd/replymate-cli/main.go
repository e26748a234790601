package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/MikeSquared-Agency/replymate/internal/analyzer"
	"github.com/MikeSquared-Agency/replymate/internal/anthropic"
	"github.com/MikeSquared-Agency/replymate/internal/compositor"
	"github.com/MikeSquared-Agency/replymate/internal/config"
	"github.com/MikeSquared-Agency/replymate/internal/export"
	"github.com/MikeSquared-Agency/replymate/internal/generator"
	"github.com/MikeSquared-Agency/replymate/internal/gpt"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	env := config.Load()
	var gens []generator.Generator
	if !cfg.Local {
		gens = generators(env)
	}
	replies := generator.NewService(logger, nil, env.GenerateTimeout, gens...)

	if err := run(ctx, cfg, replies, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func generators(env config.Config) []generator.Generator {
	var gens []generator.Generator
	if env.GenerateURL != "" {
		gens = append(gens, generator.NewHTTPGenerator(env.GenerateURL))
	}
	if env.AnthropicAPIKey != "" {
		gens = append(gens, generator.NewAnthropicGenerator(anthropic.NewClient(env.AnthropicAPIKey, env.AnthropicModel)))
	}
	if env.OpenAIAPIKey != "" {
		gens = append(gens, generator.NewGPTGenerator(gpt.NewClient(env.OpenAIAPIKey, env.OpenAIModel)))
	}
	return gens
}

func run(ctx context.Context, cfg Config, replies *generator.Service, stdin io.Reader, stdout io.Writer) error {
	transcript, err := readTranscript(cfg.InputPath, stdin)
	if err != nil {
		return err
	}

	result := analyzer.Analyze(transcript)
	reply := replies.Reply(ctx, cfg.request(transcript))
	text := reply.Text
	if cfg.Question {
		text = compositor.AppendQuestion(text)
	}

	doc := export.Document(result, text)
	if _, err := io.WriteString(stdout, doc); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "\nsource=%s\n", reply.Source)

	if cfg.ExportPath != "" {
		if err := os.WriteFile(cfg.ExportPath, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
	}
	return nil
}

func readTranscript(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return string(b), nil
}
