package simple

import (
	"context"
	"fmt"
	"strings"

	"github.com/dejo1307/facetmcp/internal/facets"
	"github.com/dejo1307/facetmcp/internal/renderers"
)

// SimpleFacetRenderer lists a facet's options as a markdown checklist.
// It is used for every facet that does not declare a type.
type SimpleFacetRenderer struct {
	facetName string
}

// New creates a SimpleFacetRenderer for the named facet.
func New(facetName string) *SimpleFacetRenderer {
	return &SimpleFacetRenderer{facetName: facetName}
}

// Register makes the renderer available under renderers.DefaultRendererID.
func Register(reg *renderers.Registry, ctors *renderers.Constructors) {
	ctors.Register(renderers.DefaultRendererID, func(args ...string) (any, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("%s requires a facet name", renderers.DefaultRendererID)
		}
		return New(args[0]), nil
	})
}

func (r *SimpleFacetRenderer) FacetName() string {
	return r.facetName
}

// Render writes one bullet per option in the order the search engine returned them.
func (r *SimpleFacetRenderer) Render(ctx context.Context, facet *facets.Facet) (string, error) {
	var sb strings.Builder
	sb.WriteString(Heading(facet))

	if len(facet.Options) == 0 {
		sb.WriteString("_No options._\n")
		return sb.String(), nil
	}

	for _, opt := range facet.Options {
		sb.WriteString(OptionLine(opt))
	}
	return sb.String(), nil
}

// Heading returns the markdown heading for a facet.
func Heading(facet *facets.Facet) string {
	return fmt.Sprintf("### %s\n\n", facet.DisplayLabel())
}

// OptionLine returns the checklist line for a single option.
func OptionLine(opt facets.Option) string {
	mark := " "
	if opt.Selected {
		mark = "x"
	}
	return fmt.Sprintf("- [%s] %s (%d)\n", mark, opt.DisplayLabel(), opt.Count)
}
