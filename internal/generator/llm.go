package generator

import (
	"context"
	"fmt"

	"github.com/MikeSquared-Agency/replymate/internal/anthropic"
	"github.com/MikeSquared-Agency/replymate/internal/gpt"
)

const maxReplyTokens = 800

type AnthropicGenerator struct {
	llm *anthropic.Client
}

func NewAnthropicGenerator(llm *anthropic.Client) *AnthropicGenerator {
	return &AnthropicGenerator{llm: llm}
}

func (a *AnthropicGenerator) Name() string { return "anthropic" }

func (a *AnthropicGenerator) Generate(ctx context.Context, req Request) (string, error) {
	messages := []anthropic.Message{
		{Role: "user", Content: buildUserPrompt(req)},
	}
	text, err := a.llm.Complete(ctx, systemPrompt, messages, maxReplyTokens)
	if err != nil {
		return "", fmt.Errorf("anthropic reply: %w", err)
	}
	return text, nil
}

type GPTGenerator struct {
	llm *gpt.Client
}

func NewGPTGenerator(llm *gpt.Client) *GPTGenerator {
	return &GPTGenerator{llm: llm}
}

func (g *GPTGenerator) Name() string { return "openai" }

func (g *GPTGenerator) Generate(ctx context.Context, req Request) (string, error) {
	text, err := g.llm.Reply(ctx, systemPrompt, buildUserPrompt(req), maxReplyTokens)
	if err != nil {
		return "", fmt.Errorf("openai reply: %w", err)
	}
	return text, nil
}
