// Package prompt turns a filter set into the instruction text sent to the
// generative model. Building is pure: no I/O, no state, and the same
// FilterSet always yields byte-identical output.
package prompt

import (
	"fmt"
	"strings"

	"github.com/shop2008/movie-recommendation-app/internal/model"
)

// Build renders the recommendation prompt for the given filters.
//
// The count is always stated. "Preferences", "Languages" and "Genres"
// lines appear only when the corresponding filter is non-empty, as does
// the liked-movies exclusion clause. Excluded titles are advisory: the
// model is told not to repeat them but they are framed as taste signal,
// not a hard denylist, so an echoed title is still a valid candidate
// downstream. A reason field is requested only when the user supplied
// any taste signal at all.
func Build(f model.FilterSet) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d unique movie recommendations", f.MaxResults)
	if f.HasTasteSignal() {
		b.WriteString(" based on the following criteria:")
	}
	b.WriteString("\n")

	if titles := joinNonEmpty(f.ExcludedTitles); titles != "" {
		fmt.Fprintf(&b, "\nLiked movies (the user already enjoys these; use them as a signal of taste but do not recommend them again): %s", titles)
	}
	if prefs := joinNonEmpty(f.Preferences); prefs != "" {
		fmt.Fprintf(&b, "\nPreferences: %s", prefs)
	}
	if langs := joinNonEmpty(f.Languages); langs != "" {
		fmt.Fprintf(&b, "\nLanguages: %s", langs)
	}
	if genres := joinNonEmpty(f.Genres); genres != "" {
		fmt.Fprintf(&b, "\nGenres: %s", genres)
	}

	b.WriteString("\n\n")
	b.WriteString(promptGuidance)
	b.WriteString("\n\n")
	if f.HasTasteSignal() {
		b.WriteString(formatInstructionsWithReason)
	} else {
		b.WriteString(formatInstructions)
	}

	return b.String()
}

// joinNonEmpty joins trimmed, non-empty entries with ", ", preserving
// the caller's order.
func joinNonEmpty(values []string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, ", ")
}
