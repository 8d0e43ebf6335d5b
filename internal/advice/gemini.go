package advice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/trangvu/lunacycle/internal/config"
)

// PromptFunc renders the provider prompt for a request. The CLI injects a
// localized builder so the generated advice matches the user's language;
// the provider itself stays translation-free.
type PromptFunc func(req Request) string

// GeminiProvider implements Provider on top of Google's Gemini API.
// Responses are constrained to a JSON schema mirroring Daily, so a
// well-behaved model cannot return prose.
type GeminiProvider struct {
	client      *genai.Client
	model       string
	BuildPrompt PromptFunc
}

// NewGeminiProvider creates a provider bound to one model.
func NewGeminiProvider(ctx context.Context, apiKey, model string, prompt PromptFunc) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, errors.New(config.ErrAPIKeyMissing)
	}
	if model == "" {
		model = config.DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrProviderCall, err)
	}

	return &GeminiProvider{
		client:      client,
		model:       model,
		BuildPrompt: prompt,
	}, nil
}

// responseSchema constrains the model output to the Daily record shape.
func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"mood": {Type: genai.TypeString},
			"menu": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"breakfast": {Type: genai.TypeString},
					"lunch":     {Type: genai.TypeString},
					"dinner":    {Type: genai.TypeString},
				},
				Required: []string{"breakfast", "lunch", "dinner"},
			},
			"activities": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"emoji": {Type: genai.TypeString},
						"text":  {Type: genai.TypeString},
					},
					Required: []string{"emoji", "text"},
				},
			},
		},
		Required: []string{"mood", "menu", "activities"},
	}
}

// DailyAdvice asks Gemini for one day's suggestion. Any failure, from the
// network up to malformed JSON, is returned as an error; the caller
// decides how to degrade.
func (p *GeminiProvider) DailyAdvice(ctx context.Context, req Request) (*Daily, error) {
	prompt := p.BuildPrompt(req)

	slog.Debug(config.MsgAdviceFetched,
		config.LogKeyComponent, config.CompAdvice,
		config.LogKeyModel, p.model,
		config.LogKeyDay, req.DayOfCycle,
		config.LogKeyOnPeriod, req.OnPeriod,
	)

	resp, err := p.client.Models.GenerateContent(ctx,
		p.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   responseSchema(),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrProviderCall, err)
	}

	text := resp.Text()
	if text == "" {
		return nil, errors.New(config.ErrProviderEmpty)
	}

	var d Daily
	if err := json.Unmarshal([]byte(text), &d); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrProviderJSON, err)
	}
	return &d, nil
}
