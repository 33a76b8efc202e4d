package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecommendationsValid(t *testing.T) {
	raw := `{
		"recommendations": [
			{"title": "Interstellar", "year": 2014, "description": "A farmer flies into a black hole.", "reason": "Matches space opera."},
			{"title": "Sunshine", "year": 2007, "description": "A crew reignites the sun."}
		]
	}`

	candidates, err := ParseRecommendations(raw)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "Interstellar", candidates[0].Title)
	assert.Equal(t, 2014, candidates[0].Year)
	assert.Equal(t, "Matches space opera.", candidates[0].Reason)
	assert.Empty(t, candidates[1].Reason)
}

func TestParseRecommendationsStripsCodeFence(t *testing.T) {
	raw := "```json\n{\"recommendations\":[{\"title\":\"Arrival\",\"year\":2016,\"description\":\"Linguistics saves the world.\"}]}\n```"

	candidates, err := ParseRecommendations(raw)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Arrival", candidates[0].Title)
}

func TestParseRecommendationsNonJSON(t *testing.T) {
	_, err := ParseRecommendations("Sure! Here are some movies you might like: Interstellar, Arrival")
	require.ErrorIs(t, err, ErrMalformedCompletion)
}

func TestParseRecommendationsEmptyText(t *testing.T) {
	_, err := ParseRecommendations("   \n")
	require.ErrorIs(t, err, ErrMalformedCompletion)
}

func TestParseRecommendationsMissingArray(t *testing.T) {
	_, err := ParseRecommendations(`{"movies": []}`)
	require.ErrorIs(t, err, ErrMalformedCompletion)
}

func TestParseRecommendationsEmptyArrayIsValid(t *testing.T) {
	candidates, err := ParseRecommendations(`{"recommendations": []}`)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestParseRecommendationsMissingRequiredField(t *testing.T) {
	cases := map[string]string{
		"no title":       `{"recommendations":[{"year":2014,"description":"x"}]}`,
		"blank title":    `{"recommendations":[{"title":"  ","year":2014,"description":"x"}]}`,
		"no year":        `{"recommendations":[{"title":"Arrival","description":"x"}]}`,
		"no description": `{"recommendations":[{"title":"Arrival","year":2016}]}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRecommendations(raw)
			assert.ErrorIs(t, err, ErrMalformedCompletion)
		})
	}
}

func TestParseRecommendationsWrongFieldType(t *testing.T) {
	_, err := ParseRecommendations(`{"recommendations":[{"title":"Arrival","year":"2016","description":"x"}]}`)
	require.ErrorIs(t, err, ErrMalformedCompletion)
}
