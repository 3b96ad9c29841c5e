package numericrange

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dejo1307/facetmcp/internal/facets"
	"github.com/dejo1307/facetmcp/internal/filters/rangefilter"
	"github.com/dejo1307/facetmcp/internal/renderers"
	"github.com/dejo1307/facetmcp/internal/renderers/simple"
)

const (
	Type       = "numericRange"
	RendererID = "NumericRangeFacetRenderer"
)

// Renderer summarizes numeric facet values as a min/max range.
type Renderer struct {
	facetName string
}

func New(facetName string) *Renderer {
	return &Renderer{facetName: facetName}
}

// Register adds the numericRange facet type with its range filter parser.
func Register(reg *renderers.Registry, ctors *renderers.Constructors) {
	ctors.Register(RendererID, func(args ...string) (any, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("%s requires a facet name", RendererID)
		}
		return New(args[0]), nil
	})
	ctors.Register(rangefilter.ID, func(args ...string) (any, error) {
		return rangefilter.New(), nil
	})
	reg.Register(Type, RendererID, rangefilter.ID)
}

func (r *Renderer) FacetName() string {
	return r.facetName
}

// Render skips option values that are not numbers.
func (r *Renderer) Render(ctx context.Context, facet *facets.Facet) (string, error) {
	var sb strings.Builder
	sb.WriteString(simple.Heading(facet))

	var (
		lo, hi float64
		total  int
		seen   bool
	)
	for _, opt := range facet.Options {
		v, err := strconv.ParseFloat(opt.Value, 64)
		if err != nil {
			continue
		}
		if !seen || v < lo {
			lo = v
		}
		if !seen || v > hi {
			hi = v
		}
		seen = true
		total += opt.Count
	}

	if !seen {
		sb.WriteString("_No numeric values._\n")
		return sb.String(), nil
	}

	sb.WriteString(fmt.Sprintf("Range: %s - %s (%d results)\n",
		strconv.FormatFloat(lo, 'f', -1, 64),
		strconv.FormatFloat(hi, 'f', -1, 64),
		total))
	sb.WriteString(fmt.Sprintf("Filter: `%s:%s-%s`\n",
		facet.Name,
		strconv.FormatFloat(lo, 'f', -1, 64),
		strconv.FormatFloat(hi, 'f', -1, 64)))
	return sb.String(), nil
}
