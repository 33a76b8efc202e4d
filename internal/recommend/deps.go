package recommend

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/shop2008/movie-recommendation-app/internal/model"
)

// CompletionClient abstracts the generative provider. One request, one
// response; implementations validate the provider's output against the
// requested shape and fail with response.ErrMalformedCompletion when it
// does not conform.
type CompletionClient interface {
	Complete(ctx context.Context, promptText string, shape *genai.Schema) ([]model.RecommendationCandidate, error)
}

// MetadataClient abstracts the movie-metadata lookup. A provider-reported
// "no match" and a transport failure are both returned as errors; the
// caller treats them identically (drop the candidate).
type MetadataClient interface {
	FetchDetails(ctx context.Context, title string) (*model.MovieDetail, error)
}

// UpstreamError wraps a completion-stage failure. It is terminal for the
// whole request: no enrichment is attempted and no retry is made.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion provider failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
