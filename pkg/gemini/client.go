package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultModel = "gemini-3-flash-preview"

var (
	ErrMissingAPIKey = errors.New("gemini: api key is required")
	ErrNoCandidates  = errors.New("gemini: returned no candidates")
	ErrEmptyContent  = errors.New("gemini: returned empty content")
)

// Request is a single-turn generation request
type Request struct {
	System string
	Prompt string
	// ResponseMIMEType "application/json" with ResponseSchema constrains the output
	ResponseMIMEType string
	ResponseSchema   *genai.Schema
}

// Client calls the Gemini API. It is safe for concurrent use.
type Client struct {
	client  *genai.Client
	modelID string
}

// NewClient creates a new Gemini client.
func NewClient(ctx context.Context, apiKey, modelID string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}

	return &Client{
		client:  client,
		modelID: modelID,
	}, nil
}

// Generate sends the prompt and returns the concatenated text parts of the first candidate.
func (c *Client) Generate(ctx context.Context, req Request) (string, error) {
	model := c.client.GenerativeModel(c.modelID)

	if strings.TrimSpace(req.System) != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(req.System))
	}
	if req.ResponseMIMEType != "" {
		model.ResponseMIMEType = req.ResponseMIMEType
	}
	if req.ResponseSchema != nil {
		model.ResponseSchema = req.ResponseSchema
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: generate content failed: %w", err)
	}

	return extractText(resp)
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrNoCandidates
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", ErrEmptyContent
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}

	out := strings.TrimSpace(text.String())
	if out == "" {
		return "", ErrEmptyContent
	}
	return out, nil
}

// Model returns the configured model id
func (c *Client) Model() string {
	return c.modelID
}

// Close releases resources held by the Gemini client.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Unavailable is used when no credential is configured; every call fails so callers
// fall back to their default content.
type Unavailable struct{}

func (Unavailable) Generate(context.Context, Request) (string, error) {
	return "", ErrMissingAPIKey
}
