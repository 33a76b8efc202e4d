// Package recommend runs the recommendation pipeline: build a prompt from
// the user's filters, ask the generative provider for a structured list of
// candidates, then enrich every candidate with third-party metadata and
// return only the fully-enriched survivors.
package recommend

import (
	"context"
	"log"

	"github.com/sourcegraph/conc/iter"

	"github.com/shop2008/movie-recommendation-app/internal/model"
	"github.com/shop2008/movie-recommendation-app/internal/recommend/prompt"
)

// Recommender orchestrates one recommendation request. Both collaborators
// are injected so tests can substitute doubles.
type Recommender struct {
	completion CompletionClient
	metadata   MetadataClient
}

// NewRecommender wires a Recommender from its two upstream clients.
func NewRecommender(completion CompletionClient, metadata MetadataClient) *Recommender {
	return &Recommender{completion: completion, metadata: metadata}
}

// enrichOutcome is the per-candidate result of the metadata fan-out.
// Exactly one of detail/err is meaningful; a nil detail with nil err is
// treated as a miss too.
type enrichOutcome struct {
	detail *model.MovieDetail
	err    error
}

// Recommend runs the full pipeline for one filter set.
//
// A completion failure is terminal and surfaces as *UpstreamError. After
// that, each candidate's metadata lookup runs concurrently; the join waits
// for every outcome, so one miss can never cancel or fail its siblings.
// Candidates whose lookup missed are dropped (logged, never surfaced) and
// the survivors keep their original relative order. An empty result is a
// valid result.
func (r *Recommender) Recommend(ctx context.Context, filters model.FilterSet) ([]model.EnrichedRecommendation, error) {
	promptText := prompt.Build(filters)
	log.Printf("[PROMPT] %s", promptText)

	candidates, err := r.completion.Complete(ctx, promptText, ListSchema(filters.HasTasteSignal()))
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	if len(candidates) == 0 {
		return []model.EnrichedRecommendation{}, nil
	}

	// Gather-all join: one lookup per candidate, outcomes land at the
	// candidate's index regardless of completion order.
	outcomes := iter.Map(candidates, func(c *model.RecommendationCandidate) enrichOutcome {
		detail, err := r.metadata.FetchDetails(ctx, c.Title)
		return enrichOutcome{detail: detail, err: err}
	})

	enriched := make([]model.EnrichedRecommendation, 0, len(candidates))
	for i, out := range outcomes {
		switch {
		case out.err != nil:
			log.Printf("[ENRICH] dropping %q: %v", candidates[i].Title, out.err)
		case out.detail == nil:
			log.Printf("[ENRICH] dropping %q: no metadata", candidates[i].Title)
		default:
			enriched = append(enriched, model.Enrich(candidates[i], *out.detail))
		}
	}

	log.Printf("[ENRICH] %d of %d candidates enriched", len(enriched), len(candidates))
	return enriched, nil
}
