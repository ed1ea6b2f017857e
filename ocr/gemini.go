package ocr

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultGeminiModel is the model used when none is configured.
const DefaultGeminiModel = "gemini-2.0-flash"

// extractionPrompt instructs the model to transcribe everything and keep
// tabular data as markdown tables, which the tables package parses.
const extractionPrompt = `Extract all text from this document exhaustively.
Reproduce every table as a GitHub-flavored markdown table, one row per line,
keeping the original cell values. Do not summarize, describe, or omit any
content. Output markdown only, with pages separated by a blank line.`

// Gemini is a Recognizer backed by the Gemini API. The underlying
// client is safe for concurrent use; construct one Gemini per process
// and reuse it.
type Gemini struct {
	client *genai.Client
	model  string
	prompt string
}

// GeminiOption configures a Gemini recognizer.
type GeminiOption func(*Gemini)

// WithModel overrides the model name.
func WithModel(model string) GeminiOption {
	return func(g *Gemini) { g.model = model }
}

// WithPrompt overrides the extraction instruction sent with each image.
func WithPrompt(prompt string) GeminiOption {
	return func(g *Gemini) { g.prompt = prompt }
}

// NewGemini creates a Gemini recognizer authenticated with the given
// API key.
func NewGemini(ctx context.Context, apiKey string, opts ...GeminiOption) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	g := &Gemini{
		client: client,
		model:  DefaultGeminiModel,
		prompt: extractionPrompt,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Recognize sends the payload to the model and returns its markdown
// transcription.
func (g *Gemini) Recognize(ctx context.Context, data []byte, mimeType string) (string, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				genai.NewPartFromText(g.prompt),
				genai.NewPartFromBytes(data, mimeType),
			},
		},
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0)),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("recognition request failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("recognition returned no text")
	}
	return text, nil
}
