package daterange

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dejo1307/facetmcp/internal/facets"
	"github.com/dejo1307/facetmcp/internal/filters/datefilter"
	"github.com/dejo1307/facetmcp/internal/renderers"
	"github.com/dejo1307/facetmcp/internal/renderers/simple"
)

const (
	Type       = "dateRange"
	RendererID = "DateRangeFacetRenderer"
)

// displayLayout is used for the rendered bounds.
const displayLayout = "2006-01-02"

// Renderer summarizes RFC 3339 option values as an earliest/latest range.
type Renderer struct {
	facetName string
}

func New(facetName string) *Renderer {
	return &Renderer{facetName: facetName}
}

// Register adds the dateRange facet type with its date filter parser.
func Register(reg *renderers.Registry, ctors *renderers.Constructors) {
	ctors.Register(RendererID, func(args ...string) (any, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("%s requires a facet name", RendererID)
		}
		return New(args[0]), nil
	})
	ctors.Register(datefilter.ID, func(args ...string) (any, error) {
		return datefilter.New(), nil
	})
	reg.Register(Type, RendererID, datefilter.ID)
}

func (r *Renderer) FacetName() string {
	return r.facetName
}

func (r *Renderer) Render(ctx context.Context, facet *facets.Facet) (string, error) {
	var sb strings.Builder
	sb.WriteString(simple.Heading(facet))

	var (
		earliest, latest time.Time
		total            int
		seen             bool
	)
	for _, opt := range facet.Options {
		t, err := time.Parse(time.RFC3339, opt.Value)
		if err != nil {
			continue
		}
		if !seen || t.Before(earliest) {
			earliest = t
		}
		if !seen || t.After(latest) {
			latest = t
		}
		seen = true
		total += opt.Count
	}

	if !seen {
		sb.WriteString("_No dates._\n")
		return sb.String(), nil
	}

	sb.WriteString(fmt.Sprintf("From %s to %s (%d results)\n",
		earliest.UTC().Format(displayLayout),
		latest.UTC().Format(displayLayout),
		total))
	sb.WriteString(fmt.Sprintf("Filter: `%s:%s-%s`\n",
		facet.Name,
		earliest.UTC().Format(datefilter.URLLayout),
		latest.UTC().Format(datefilter.URLLayout)))
	return sb.String(), nil
}
