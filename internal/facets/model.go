package facets

import "context"

// Option is a single facet value as returned by the search engine.
type Option struct {
	Value    string `json:"value"`              // Raw indexed value, used in filter parameters
	Label    string `json:"label,omitempty"`    // Display text, falls back to Value
	Count    int    `json:"count"`              // Number of matching documents
	Selected bool   `json:"selected,omitempty"` // Option is part of the active filters
}

// DisplayLabel returns the label to show for the option.
func (o Option) DisplayLabel() string {
	if o.Label != "" {
		return o.Label
	}
	return o.Value
}

// Facet is everything a renderer needs to produce output for one facet.
type Facet struct {
	Name     string         `json:"name"`               // Facet name from the faceting configuration
	Label    string         `json:"label,omitempty"`    // Heading, falls back to Name
	Field    string         `json:"field,omitempty"`    // Index field the facet is built on
	Settings map[string]any `json:"settings,omitempty"` // Type-specific settings
	Options  []Option       `json:"options"`
}

// DisplayLabel returns the heading to show for the facet.
func (f *Facet) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// IntSetting returns an integer setting, or def if it is missing or not a number.
func (f *Facet) IntSetting(key string, def int) int {
	switch v := f.Settings[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}

// RenderedFacet is the output of rendering one configured facet.
type RenderedFacet struct {
	Name     string `json:"name"`
	Type     string `json:"type,omitempty"` // Empty for facets using the default renderer
	Renderer string `json:"renderer"`
	Output   string `json:"output"`
}

// Renderer produces the user-facing representation of a facet.
type Renderer interface {
	// FacetName returns the name of the facet the renderer was created for.
	FacetName() string
	// Render produces output for the facet's current options.
	Render(ctx context.Context, facet *Facet) (string, error)
}

// FilterParser translates a raw filter value from the URL into search engine
// (Lucene) filter syntax.
type FilterParser interface {
	Parse(raw string) (string, error)
}
