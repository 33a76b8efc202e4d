// Package response parses and validates the generative model's structured
// output. The provider is asked for JSON, but its text is never trusted:
// anything that fails to parse, or parses into the wrong shape, is rejected
// as a malformed completion rather than surfaced half-populated.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shop2008/movie-recommendation-app/internal/model"
)

// ErrMalformedCompletion marks provider output that is not valid JSON or
// does not conform to the recommendation list shape.
var ErrMalformedCompletion = errors.New("malformed completion")

// recommendationList mirrors the wire shape requested from the provider.
// json.RawMessage entries let each candidate be validated individually so
// a type error reports which entry broke, not just "unmarshal failed".
type recommendationList struct {
	Recommendations []json.RawMessage `json:"recommendations"`
}

type rawCandidate struct {
	Title       *string `json:"title"`
	Year        *int    `json:"year"`
	Description *string `json:"description"`
	Reason      string  `json:"reason"`
}

// ParseRecommendations turns raw provider text into candidates.
// Markdown code fences are tolerated because models wrap JSON in them
// even when asked not to. Every candidate must carry a non-empty title,
// an integer year and a non-empty description; reason stays optional.
func ParseRecommendations(raw string) ([]model.RecommendationCandidate, error) {
	cleaned := stripCodeFence(raw)
	if strings.TrimSpace(cleaned) == "" {
		return nil, fmt.Errorf("%w: empty response", ErrMalformedCompletion)
	}

	var list recommendationList
	if err := json.Unmarshal([]byte(cleaned), &list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCompletion, err)
	}
	if list.Recommendations == nil {
		return nil, fmt.Errorf("%w: missing recommendations array", ErrMalformedCompletion)
	}

	candidates := make([]model.RecommendationCandidate, 0, len(list.Recommendations))
	for i, entry := range list.Recommendations {
		var c rawCandidate
		if err := json.Unmarshal(entry, &c); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrMalformedCompletion, i, err)
		}
		if c.Title == nil || strings.TrimSpace(*c.Title) == "" {
			return nil, fmt.Errorf("%w: entry %d: missing title", ErrMalformedCompletion, i)
		}
		if c.Year == nil {
			return nil, fmt.Errorf("%w: entry %d: missing year", ErrMalformedCompletion, i)
		}
		if c.Description == nil || strings.TrimSpace(*c.Description) == "" {
			return nil, fmt.Errorf("%w: entry %d: missing description", ErrMalformedCompletion, i)
		}
		candidates = append(candidates, model.RecommendationCandidate{
			Title:       strings.TrimSpace(*c.Title),
			Year:        *c.Year,
			Description: strings.TrimSpace(*c.Description),
			Reason:      strings.TrimSpace(c.Reason),
		})
	}

	return candidates, nil
}

// stripCodeFence removes a surrounding ```json ... ``` (or bare ```) block.
func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		// drop the language tag on the opening fence line
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
