package options

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dejo1307/facetmcp/internal/facets"
	"github.com/dejo1307/facetmcp/internal/filters/optionsfilter"
	"github.com/dejo1307/facetmcp/internal/renderers"
	"github.com/dejo1307/facetmcp/internal/renderers/simple"
)

const (
	// Type is the facet type handled by this package.
	Type = "options"
	// RendererID identifies the renderer in the instantiation service.
	RendererID = "OptionsFacetRenderer"
)

// Renderer lists options ordered by count, most frequent first.
// The "limit" setting caps the number of listed options.
type Renderer struct {
	facetName string
}

// New creates an options renderer for the named facet.
func New(facetName string) *Renderer {
	return &Renderer{facetName: facetName}
}

// Register adds the options facet type, its renderer and its filter parser.
func Register(reg *renderers.Registry, ctors *renderers.Constructors) {
	ctors.Register(RendererID, func(args ...string) (any, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("%s requires a facet name", RendererID)
		}
		return New(args[0]), nil
	})
	ctors.Register(optionsfilter.ID, func(args ...string) (any, error) {
		return optionsfilter.New(), nil
	})
	reg.Register(Type, RendererID, optionsfilter.ID)
}

func (r *Renderer) FacetName() string {
	return r.facetName
}

func (r *Renderer) Render(ctx context.Context, facet *facets.Facet) (string, error) {
	var sb strings.Builder
	sb.WriteString(simple.Heading(facet))

	if len(facet.Options) == 0 {
		sb.WriteString("_No options._\n")
		return sb.String(), nil
	}

	sorted := make([]facets.Option, len(facet.Options))
	copy(sorted, facet.Options)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Value < sorted[j].Value
	})

	limit := facet.IntSetting("limit", 0)
	shown := sorted
	if limit > 0 && len(sorted) > limit {
		shown = sorted[:limit]
	}

	for _, opt := range shown {
		sb.WriteString(simple.OptionLine(opt))
	}
	if hidden := len(sorted) - len(shown); hidden > 0 {
		sb.WriteString(fmt.Sprintf("- ... %d more\n", hidden))
	}
	return sb.String(), nil
}
