package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// LLMProvider abstracts the text-generation collaborator so the
// recommendation adapter can be tested without a live model.
type LLMProvider interface {
	// GenerateStructured asks the model for JSON output and unmarshals the
	// response into output.
	GenerateStructured(ctx context.Context, prompt string, output interface{}) error

	// Close releases the underlying client.
	Close()
}

// GeminiProvider is the Google Gemini implementation of LLMProvider.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiProvider(ctx context.Context, modelName string) (*GeminiProvider, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)
	model.ResponseMIMEType = "application/json"

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

func (g *GeminiProvider) GenerateStructured(ctx context.Context, prompt string, output interface{}) error {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return fmt.Errorf("no response from LLM")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			if err := json.Unmarshal([]byte(txt), output); err != nil {
				return fmt.Errorf("failed to parse JSON: %w", err)
			}
			return nil
		}
	}

	return fmt.Errorf("no text content in response")
}

func (g *GeminiProvider) Close() {
	g.client.Close()
}
