package roadmap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifetimegps/quiz-engine/internal/llm"
	"github.com/lifetimegps/quiz-engine/internal/types"
)

// mockClient records the last prompt and returns canned output.
type mockClient struct {
	response   string
	err        error
	lastPrompt string
	lastTier   llm.ModelTier
}

func (m *mockClient) GenerateContent(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	m.lastPrompt = prompt
	m.lastTier = tier
	return m.response, m.err
}

func (m *mockClient) GenerateJSON(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return m.GenerateContent(context.Background(), prompt, tier)
}

func (m *mockClient) GetModel(llm.ModelTier) string { return "mock-model" }
func (m *mockClient) Close() error                  { return nil }

func electricianCareer() types.CareerRecord {
	return types.CareerRecord{
		ID:          "electrician",
		Title:       "Electrician",
		Description: "Installs and maintains electrical systems.",
		Skills:      []string{"circuit theory", "troubleshooting"},
		Salary:      "$60,000",
		Outlook:     "6% growth",
		ScoringProfile: types.ScoringProfile{
			Trade: true,
		},
	}
}

func TestGenerate_ReturnsContent(t *testing.T) {
	client := &mockClient{response: "## Roadmap\n1. Apprenticeship"}
	generator := NewGenerator(client)

	content, err := generator.Generate(context.Background(), electricianCareer())
	require.NoError(t, err)
	assert.Equal(t, "## Roadmap\n1. Apprenticeship", content)
}

func TestGenerate_PromptIncludesCareerFields(t *testing.T) {
	client := &mockClient{response: "roadmap"}
	generator := NewGenerator(client)

	_, err := generator.Generate(context.Background(), electricianCareer())
	require.NoError(t, err)

	assert.Contains(t, client.lastPrompt, "Electrician")
	assert.Contains(t, client.lastPrompt, "circuit theory")
	assert.Contains(t, client.lastPrompt, "apprenticeships")
}

func TestGenerate_UsesAdvancedTierByDefault(t *testing.T) {
	client := &mockClient{response: "roadmap"}
	generator := NewGenerator(client)

	_, err := generator.Generate(context.Background(), electricianCareer())
	require.NoError(t, err)
	assert.Equal(t, llm.TierAdvanced, client.lastTier)
}

func TestGenerate_WithTierOverride(t *testing.T) {
	client := &mockClient{response: "roadmap"}
	generator := NewGenerator(client).WithTier(llm.TierLite)

	_, err := generator.Generate(context.Background(), electricianCareer())
	require.NoError(t, err)
	assert.Equal(t, llm.TierLite, client.lastTier)
}

func TestGenerate_PropagatesClientError(t *testing.T) {
	client := &mockClient{err: errors.New("quota exceeded")}
	generator := NewGenerator(client)

	_, err := generator.Generate(context.Background(), electricianCareer())
	assert.ErrorContains(t, err, "quota exceeded")
}

func TestGenerate_RejectsEmptyResponse(t *testing.T) {
	client := &mockClient{response: "   \n"}
	generator := NewGenerator(client)

	_, err := generator.Generate(context.Background(), electricianCareer())
	assert.ErrorContains(t, err, "empty roadmap")
}

func TestGenerate_NilClient(t *testing.T) {
	generator := NewGenerator(nil)

	_, err := generator.Generate(context.Background(), electricianCareer())
	assert.Error(t, err)
}
