package reasoning

import (
	"context"
	"fmt"

	"bannermind/internal/app/ports"
)

// Options selects and configures the reasoning backend.
type Options struct {
	Provider string // "openai", "gemini" or "scripted"
	BaseURL  string
	APIKey   string
	Model    string
}

// New builds the ReasoningClient named by opts.Provider. An empty provider
// falls back to the scripted client.
func New(ctx context.Context, opts Options) (ports.ReasoningClient, error) {
	switch opts.Provider {
	case "openai":
		if opts.BaseURL == "" {
			opts.BaseURL = "https://api.openai.com/v1"
		}
		if opts.Model == "" {
			opts.Model = "gpt-4o-mini"
		}
		return NewOpenAIClient(opts.BaseURL, opts.APIKey, opts.Model), nil
	case "gemini":
		if opts.APIKey == "" {
			return nil, fmt.Errorf("gemini provider requires an API key")
		}
		if opts.Model == "" {
			opts.Model = "gemini-2.0-flash"
		}
		return NewGeminiClient(ctx, opts.APIKey, opts.Model)
	case "scripted", "":
		return NewScriptedClient(), nil
	default:
		return nil, fmt.Errorf("unknown reasoning provider %q", opts.Provider)
	}
}
