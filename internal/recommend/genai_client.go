package recommend

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"

	"github.com/shop2008/movie-recommendation-app/internal/model"
	"github.com/shop2008/movie-recommendation-app/internal/recommend/response"
)

const (
	// DefaultModel is the Gemini model used for recommendation requests.
	DefaultModel = "gemini-2.5-flash"

	completionTemperature     = 0.7
	completionMaxOutputTokens = 4096
)

// GeminiCompletionClient implements CompletionClient using the Gemini API.
type GeminiCompletionClient struct {
	client *genai.Client
	model  string
}

// NewGeminiCompletionClient creates a GeminiCompletionClient for the given
// model name, falling back to DefaultModel when empty.
func NewGeminiCompletionClient(client *genai.Client, modelName string) *GeminiCompletionClient {
	if modelName == "" {
		modelName = DefaultModel
	}
	return &GeminiCompletionClient{client: client, model: modelName}
}

// Complete sends the prompt and returns the parsed candidate list. The
// provider is constrained to JSON matching shape, and the returned text is
// re-validated locally: a non-conforming payload fails with
// response.ErrMalformedCompletion instead of yielding partial candidates.
func (c *GeminiCompletionClient) Complete(ctx context.Context, promptText string, shape *genai.Schema) ([]model.RecommendationCandidate, error) {
	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](completionTemperature),
		MaxOutputTokens:  completionMaxOutputTokens,
		ResponseMIMEType: "application/json",
		ResponseSchema:   shape,
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: promptText}},
		},
	}, config)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	text := extractText(resp)
	log.Printf("[COMPLETION] raw response: %s", text)

	return response.ParseRecommendations(text)
}

// extractText concatenates the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return text
}
