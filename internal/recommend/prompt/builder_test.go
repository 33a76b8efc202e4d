package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shop2008/movie-recommendation-app/internal/model"
)

func TestBuildBareFilterSetHasNoCriteriaLines(t *testing.T) {
	out := Build(model.FilterSet{MaxResults: 5})

	assert.Contains(t, out, "Generate 5 unique movie recommendations")
	assert.NotContains(t, out, "based on the following criteria")
	assert.NotContains(t, out, "Preferences:")
	assert.NotContains(t, out, "Languages:")
	assert.NotContains(t, out, "Genres:")
	assert.NotContains(t, out, "Liked movies")
	assert.NotContains(t, out, "reason")
}

func TestBuildIncludesOnlySuppliedLines(t *testing.T) {
	out := Build(model.FilterSet{
		Preferences: []string{"space opera", "slow burn"},
		Languages:   []string{"English"},
		MaxResults:  10,
	})

	assert.Contains(t, out, "based on the following criteria:")
	assert.Contains(t, out, "Preferences: space opera, slow burn")
	assert.Contains(t, out, "Languages: English")
	assert.NotContains(t, out, "Genres:")
	assert.NotContains(t, out, "Liked movies")
}

func TestBuildListsExcludedTitlesVerbatim(t *testing.T) {
	out := Build(model.FilterSet{
		MaxResults:     5,
		ExcludedTitles: []string{"Dune", "The Matrix Resurrections"},
	})

	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "The Matrix Resurrections")
	assert.Contains(t, out, "do not recommend them again")
	assert.Contains(t, out, "signal of taste")
}

func TestBuildRequestsReasonOnlyWithTasteSignal(t *testing.T) {
	plain := Build(model.FilterSet{MaxResults: 3})
	assert.NotContains(t, plain, `"reason"`)

	withSignal := Build(model.FilterSet{MaxResults: 3, Genres: []string{"Horror"}})
	assert.Contains(t, withSignal, `"reason"`)
}

func TestBuildIsDeterministic(t *testing.T) {
	filters := model.FilterSet{
		Preferences:    []string{"heist movies"},
		Languages:      []string{"English", "French"},
		Genres:         []string{"Thriller"},
		MaxResults:     5,
		ExcludedTitles: []string{"Heat"},
	}

	first := Build(filters)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Build(filters))
	}
}

func TestBuildSkipsBlankEntries(t *testing.T) {
	out := Build(model.FilterSet{
		Preferences: []string{"", "  ", "found footage"},
		MaxResults:  5,
	})

	assert.Contains(t, out, "Preferences: found footage")
	assert.False(t, strings.Contains(out, "Preferences: ,"), "blank entries must not leave separators behind")
}
