package prompt

// Prompt fragments for the recommendation request. Kept as constants so
// the builder stays a pure join over them and the filter values.

const promptGuidance = `Consider both classic and contemporary films that match the criteria.
Ensure recommendations are diverse and avoid multiple movies from the same franchise.`

// formatInstructions describes the required output. The field names and
// types are load-bearing: the response parser rejects anything else.
const formatInstructions = `Respond with JSON only, in exactly this shape:
{
  "recommendations": [
    {
      "title": "Movie Title",
      "year": 2023,
      "description": "Brief description."
    }
  ]
}`

const formatInstructionsWithReason = `Respond with JSON only, in exactly this shape:
{
  "recommendations": [
    {
      "title": "Movie Title",
      "year": 2023,
      "description": "Brief description.",
      "reason": "Why this matches the stated criteria."
    }
  ]
}`
