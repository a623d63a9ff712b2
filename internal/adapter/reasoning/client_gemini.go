package reasoning

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"bannermind/internal/app/ports"
	"bannermind/internal/domain/mind"
)

// GeminiClient backs reasoning with the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

var _ ports.ReasoningClient = (*GeminiClient)(nil)

func (c *GeminiClient) Reason(ctx context.Context, agentID string, p mind.Perception, memoryContext string) (string, error) {
	prompt := systemInstruction + "\n\n" + BuildPrompt(agentID, p, memoryContext)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty model response")
	}
	return text, nil
}
