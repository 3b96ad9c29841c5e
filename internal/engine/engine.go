package engine

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/dejo1307/facetmcp/internal/config"
	"github.com/dejo1307/facetmcp/internal/facets"
	"github.com/dejo1307/facetmcp/internal/filters"
	"github.com/dejo1307/facetmcp/internal/renderers"
)

// Provider registers one or more facet types and their implementations.
type Provider func(reg *renderers.Registry, ctors *renderers.Constructors)

// Engine wires the faceting configuration to the facet type registry and
// serves search requests.
type Engine struct {
	cfg          *config.Config
	registry     *renderers.Registry
	constructors *renderers.Constructors
}

// New creates a new Engine with the given config.
// Facet type providers must be registered after creation.
func New(cfg *config.Config) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("engine: nil config")
	}
	return &Engine{
		cfg:          cfg,
		registry:     renderers.NewRegistry(),
		constructors: renderers.NewConstructors(),
	}, nil
}

// RegisterProvider lets a facet type provider add its types.
func (e *Engine) RegisterProvider(p Provider) {
	p(e.registry, e.constructors)
}

// Registry returns the facet type registry.
func (e *Engine) Registry() *renderers.Registry {
	return e.registry
}

// Constructors returns the instantiation service.
func (e *Engine) Constructors() *renderers.Constructors {
	return e.constructors
}

// Config returns the engine config.
func (e *Engine) Config() *config.Config {
	return e.cfg
}

// NewFactory creates a facet renderer factory for a single request.
func (e *Engine) NewFactory() *renderers.Factory {
	return renderers.NewFactory(e.cfg.Faceting.Facets, e.registry, e.constructors)
}

// RenderFacets renders every configured facet from the facet counts of a
// search result. Facets are rendered in name order. Facets without options
// are skipped unless show_empty_facets is set.
func (e *Engine) RenderFacets(ctx context.Context, results map[string][]facets.Option) ([]facets.RenderedFacet, error) {
	factory := e.NewFactory()

	var rendered []facets.RenderedFacet
	for _, name := range e.cfg.Faceting.FacetNames() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		options := results[name]
		if len(options) == 0 && !e.cfg.Faceting.ShowEmptyFacets {
			continue
		}

		out, err := e.renderFacet(ctx, factory, name, options)
		if err != nil {
			return nil, err
		}
		rendered = append(rendered, out)
	}

	log.Printf("[engine] rendered %d of %d configured facets", len(rendered), len(e.cfg.Faceting.Facets))
	return rendered, nil
}

// RenderFacet renders a single configured facet.
func (e *Engine) RenderFacet(ctx context.Context, name string, options []facets.Option) (facets.RenderedFacet, error) {
	return e.renderFacet(ctx, e.NewFactory(), name, options)
}

func (e *Engine) renderFacet(ctx context.Context, factory *renderers.Factory, name string, options []facets.Option) (facets.RenderedFacet, error) {
	facetType, rendererID, err := factory.Resolve(name)
	if err != nil {
		return facets.RenderedFacet{}, err
	}

	renderer, err := factory.RendererByFacetName(name)
	if err != nil {
		return facets.RenderedFacet{}, err
	}

	settings := e.cfg.Faceting.Facets[name]
	output, err := renderer.Render(ctx, &facets.Facet{
		Name:     name,
		Label:    settings.Label,
		Field:    e.cfg.Faceting.FieldFor(name),
		Settings: settings.Options,
		Options:  options,
	})
	if err != nil {
		return facets.RenderedFacet{}, fmt.Errorf("rendering facet %q: %w", name, err)
	}

	return facets.RenderedFacet{
		Name:     name,
		Type:     facetType,
		Renderer: rendererID,
		Output:   output,
	}, nil
}

// BuildFilterQueries translates URL filter parameters of the form
// "facetName:value" into engine filter queries ("field:(expr)").
// Filters for facets that are not configured are dropped.
func (e *Engine) BuildFilterQueries(rawFilters []string) ([]string, error) {
	factory := e.NewFactory()

	queries := make([]string, 0, len(rawFilters))
	for _, raw := range rawFilters {
		name, value, ok := strings.Cut(raw, ":")
		if !ok || name == "" {
			return nil, fmt.Errorf("malformed filter %q: expected facetName:value", raw)
		}

		if _, configured := e.cfg.Faceting.Facets[name]; !configured {
			log.Printf("[engine] ignoring filter for unconfigured facet %q", name)
			continue
		}

		parser, err := factory.FilterParserByFacetName(name)
		if err != nil {
			return nil, err
		}

		var expr string
		if parser != nil {
			expr, err = parser.Parse(value)
			if err != nil {
				return nil, fmt.Errorf("filter %q: %w", raw, err)
			}
		} else {
			if value == "" {
				return nil, fmt.Errorf("filter %q: %w", raw, filters.ErrEmptyValue)
			}
			expr = filters.Quote(value)
		}

		queries = append(queries, fmt.Sprintf("%s:(%s)", e.cfg.Faceting.FieldFor(name), expr))
	}
	return queries, nil
}
