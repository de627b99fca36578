package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gdugdh24/mpit2026-discovery/internal/categorizer"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	gobreaker "github.com/sony/gobreaker/v2"
	"google.golang.org/api/option"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-1.5-flash"

var ErrEmptyResponse = errors.New("gemini returned no content")

// BreakerConfig controls when the client stops calling Gemini for a while.
type BreakerConfig struct {
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

type generateFunc func(ctx context.Context, req categorizer.ClassificationRequest) (*genai.GenerateContentResponse, error)

// GeminiClient classifies text with a Gemini model. Calls go through a
// circuit breaker; an open breaker fails immediately and is never retried.
type GeminiClient struct {
	client    *genai.Client
	modelName string
	generate  generateFunc
	breaker   *gobreaker.CircuitBreaker[string]
}

func NewGeminiClient(ctx context.Context, apiKey, modelName string, breaker BreakerConfig) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	c := &GeminiClient{
		client:    client,
		modelName: modelName,
		breaker:   newBreaker(breaker),
	}
	c.generate = c.generateContent
	return c, nil
}

func newBreaker(cfg BreakerConfig) *gobreaker.CircuitBreaker[string] {
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.OpenTimeout == 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	return gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "gemini",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	})
}

func (c *GeminiClient) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// ClassifyText sends one request and returns the text of the first candidate.
func (c *GeminiClient) ClassifyText(ctx context.Context, req categorizer.ClassificationRequest) (string, error) {
	return c.breaker.Execute(func() (string, error) {
		resp, err := c.generate(ctx, req)
		if err != nil {
			return "", fmt.Errorf("gemini generate content: %w", err)
		}
		return firstCandidateText(resp)
	})
}

func (c *GeminiClient) generateContent(ctx context.Context, req categorizer.ClassificationRequest) (*genai.GenerateContentResponse, error) {
	model := c.client.GenerativeModel(c.modelName)
	model.SetTemperature(req.Temperature)
	model.SetMaxOutputTokens(req.MaxOutputTokens)
	model.SetCandidateCount(1)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(req.Instructions)},
	}
	return model.GenerateContent(ctx, genai.Text(req.Content))
}

func firstCandidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}
