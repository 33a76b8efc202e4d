package recommend

import "google.golang.org/genai"

// ListSchema is the output shape requested from the provider: an object
// holding a recommendations array of {title, year, description} entries.
// When the request carried any taste signal, each entry must also explain
// itself with a reason field.
func ListSchema(includeReason bool) *genai.Schema {
	properties := map[string]*genai.Schema{
		"title":       {Type: genai.TypeString},
		"year":        {Type: genai.TypeInteger},
		"description": {Type: genai.TypeString},
	}
	required := []string{"title", "year", "description"}
	if includeReason {
		properties["reason"] = &genai.Schema{Type: genai.TypeString}
		required = append(required, "reason")
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"recommendations": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type:       genai.TypeObject,
					Properties: properties,
					Required:   required,
				},
			},
		},
		Required: []string{"recommendations"},
	}
}
