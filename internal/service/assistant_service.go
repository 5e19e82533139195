package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/embarkhq/embark/config"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// AssistantService is the onboarding buddy chat backend, answering new-hire
// questions about their first weeks.
type AssistantService interface {
	Chat(ctx context.Context, message string) (string, error)
}

type assistantService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewAssistantService(cfg *config.Config) (AssistantService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. AssistantService will be non-functional.")
		return &assistantService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	return &assistantService{client: model, cfg: cfg}, nil
}

func (s *assistantService) Chat(ctx context.Context, message string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("assistant is not configured (missing API key)")
	}

	var prompt strings.Builder
	prompt.WriteString("You are a friendly onboarding buddy for new employees. ")
	prompt.WriteString("Answer questions about the workplace, first-week logistics, and company culture concisely and warmly. ")
	prompt.WriteString("If you do not know a company-specific detail, say so and suggest who to ask.\n\n")
	prompt.WriteString("Employee question:\n")
	prompt.WriteString(message)

	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		log.Error().Err(err).Msg("Assistant: Gemini request failed")
		return "", fmt.Errorf("assistant request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("assistant returned an empty response")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("assistant returned no text content")
	}
	return out.String(), nil
}
