package model

// FilterSet is the immutable input to a single recommendation run.
// Preferences keeps the order the user typed them in; ExcludedTitles is
// derived from the user's liked-movie history and may be empty.
type FilterSet struct {
	Preferences    []string
	Languages      []string
	Genres         []string
	MaxResults     int
	ExcludedTitles []string
}

// HasTasteSignal reports whether the user supplied anything beyond the
// result count. When true, the model is asked to justify each pick with
// a reason field.
func (f FilterSet) HasTasteSignal() bool {
	return len(f.Preferences) > 0 || len(f.Languages) > 0 ||
		len(f.Genres) > 0 || len(f.ExcludedTitles) > 0
}

// RecommendationCandidate is one entry produced by the generative model,
// before metadata enrichment. Title is the join key against the metadata
// provider; no numeric IDs exist at this stage.
type RecommendationCandidate struct {
	Title       string `json:"title"`
	Year        int    `json:"year"`
	Description string `json:"description"`
	Reason      string `json:"reason,omitempty"`
}

// MovieDetail is the normalized payload from the metadata provider.
// Absence of a detail means "not found", never an empty struct.
type MovieDetail struct {
	Title        string `json:"title"`
	PosterURL    string `json:"posterUrl,omitempty"`
	ExternalLink string `json:"externalLink"`
	Year         string `json:"year"`
	Rating       string `json:"rating,omitempty"`
	Runtime      string `json:"runtime,omitempty"`
	Director     string `json:"director,omitempty"`
	Plot         string `json:"plot"`
}

// EnrichedRecommendation is a candidate merged with its metadata. Every
// value in a final result set carries a resolved MovieDetail; candidates
// whose lookup missed are dropped upstream instead of emitted partially.
type EnrichedRecommendation struct {
	Title        string `json:"title"`
	Year         int    `json:"year"`
	Description  string `json:"description"`
	Reason       string `json:"reason,omitempty"`
	PosterURL    string `json:"posterUrl,omitempty"`
	ExternalLink string `json:"externalLink"`
	ReleaseYear  string `json:"releaseYear"`
	Rating       string `json:"rating,omitempty"`
	Runtime      string `json:"runtime,omitempty"`
	Director     string `json:"director,omitempty"`
	Plot         string `json:"plot"`
}

// Enrich merges a candidate with its resolved detail. The candidate's
// title, year and description win over the provider's variants so the
// output stays correlated with what the model actually recommended.
func Enrich(c RecommendationCandidate, d MovieDetail) EnrichedRecommendation {
	return EnrichedRecommendation{
		Title:        c.Title,
		Year:         c.Year,
		Description:  c.Description,
		Reason:       c.Reason,
		PosterURL:    d.PosterURL,
		ExternalLink: d.ExternalLink,
		ReleaseYear:  d.Year,
		Rating:       d.Rating,
		Runtime:      d.Runtime,
		Director:     d.Director,
		Plot:         d.Plot,
	}
}
