// Package gemini adapts the Google Gemini API to the single capability the
// pipeline needs: one image in, one {title, alt text} annotation out.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Annotation is the structured result of one analysis call. AltText is
// bounded to 125 characters by the service prompt contract and is not
// re-validated here.
type Annotation struct {
	Title   string `json:"title"`
	AltText string `json:"alt_text"`
}

// Client wraps a genai.Client configured for the Gemini API backend.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient builds a Gemini-backed analysis client. apiKey and model must
// be non-empty; no network traffic happens until the first call.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: API key is empty")
	}
	if model == "" {
		return nil, errors.New("gemini: model is empty")
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Client{client: c, model: model}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string { return c.model }

// Analyze sends one image plus the optional hint tags to Gemini and returns
// the parsed annotation. The call blocks until the service responds or the
// context is cancelled. Hard service errors (network, auth, quota) and
// unparsable responses are returned as errors; a parsable response with a
// missing field is repaired with defaults instead (see ParseAnnotation).
func (c *Client) Analyze(ctx context.Context, data []byte, mimeType string, tags []string) (Annotation, error) {
	contents := []*genai.Content{{
		Role: "user",
		Parts: []*genai.Part{
			{Text: BuildPrompt(tags)},
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
		},
	}}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return Annotation{}, fmt.Errorf("gemini: generate content: %w", err)
	}

	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			text.WriteString(part.Text)
		}
	}
	return ParseAnnotation(text.String())
}

// Ping verifies the API is reachable with the configured credential and
// that the model exists. Used by the check command only.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.client.Models.Get(ctx, c.model, nil); err != nil {
		return fmt.Errorf("gemini: model %q unavailable: %w", c.model, err)
	}
	return nil
}
