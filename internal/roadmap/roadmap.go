// Package roadmap generates step-by-step career roadmaps for ranked matches.
package roadmap

import (
	"context"
	"fmt"
	"strings"

	"github.com/lifetimegps/quiz-engine/internal/llm"
	"github.com/lifetimegps/quiz-engine/internal/types"
)

// Generator produces career roadmaps through an LLM client.
type Generator struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewGenerator creates a roadmap generator. Roadmaps are long-form guidance,
// so the advanced tier is the default.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{
		client: client,
		tier:   llm.TierAdvanced,
	}
}

// WithTier overrides the model tier, mainly for cheaper batch generation.
func (g *Generator) WithTier(tier llm.ModelTier) *Generator {
	return &Generator{client: g.client, tier: tier}
}

// Generate produces a roadmap for the given career.
func (g *Generator) Generate(ctx context.Context, career types.CareerRecord) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("LLM client is not configured")
	}

	prompt := buildPrompt(career)
	content, err := g.client.GenerateContent(ctx, prompt, g.tier)
	if err != nil {
		return "", fmt.Errorf("failed to generate roadmap for %s: %w", career.ID, err)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("empty roadmap generated for %s", career.ID)
	}
	return content, nil
}
