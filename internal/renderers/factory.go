package renderers

import (
	"fmt"

	"github.com/dejo1307/facetmcp/internal/config"
	"github.com/dejo1307/facetmcp/internal/facets"
)

// DefaultRendererID is used for facets that do not declare a type.
const DefaultRendererID = "SimpleFacetRenderer"

// Factory creates facet renderers and filter parsers depending on the
// configured type of a facet. A Factory is cheap and meant to be created per
// request; it never mutates the configuration it was given.
type Factory struct {
	facets       map[string]config.FacetSettings
	registry     *Registry
	constructors *Constructors
}

// NewFactory creates a factory over the given facets configuration.
func NewFactory(facetsConfig map[string]config.FacetSettings, registry *Registry, constructors *Constructors) *Factory {
	return &Factory{
		facets:       facetsConfig,
		registry:     registry,
		constructors: constructors,
	}
}

// RendererByFacetName looks up a facet's configuration and creates a renderer
// accordingly.
func (f *Factory) RendererByFacetName(facetName string) (facets.Renderer, error) {
	settings, err := f.settings(facetName)
	if err != nil {
		return nil, err
	}

	rendererID := DefaultRendererID
	if settings.Type != "" {
		reg, err := f.registry.Lookup(settings.Type)
		if err != nil {
			return nil, fmt.Errorf("facet %q: %w", facetName, err)
		}
		rendererID = reg.Renderer
	}

	obj, err := f.constructors.Create(rendererID, facetName)
	if err != nil {
		return nil, fmt.Errorf("facet %q: %w", facetName, err)
	}

	renderer, ok := obj.(facets.Renderer)
	if !ok {
		return nil, fmt.Errorf("facet %q: %T (%s) is %w", facetName, obj, rendererID, ErrInvalidRendererType)
	}
	return renderer, nil
}

// FilterParserByFacetName looks up a facet's configuration and creates its
// filter parser. It returns nil without error when the facet declares no type,
// or its type is not registered or has no filter parser.
func (f *Factory) FilterParserByFacetName(facetName string) (facets.FilterParser, error) {
	settings, err := f.settings(facetName)
	if err != nil {
		return nil, err
	}
	if settings.Type == "" {
		return nil, nil
	}

	reg, err := f.registry.Lookup(settings.Type)
	if err != nil || !reg.HasFilterParser() {
		return nil, nil
	}

	obj, err := f.constructors.Create(reg.FilterParser)
	if err != nil {
		return nil, fmt.Errorf("facet %q: %w", facetName, err)
	}

	parser, ok := obj.(facets.FilterParser)
	if !ok {
		return nil, fmt.Errorf("facet %q: %T (%s) is %w", facetName, obj, reg.FilterParser, ErrInvalidFilterParserType)
	}
	return parser, nil
}

// Resolve returns the facet's type and the renderer identifier it maps to.
func (f *Factory) Resolve(facetName string) (facetType, rendererID string, err error) {
	settings, err := f.settings(facetName)
	if err != nil {
		return "", "", err
	}
	if settings.Type == "" {
		return "", DefaultRendererID, nil
	}
	reg, err := f.registry.Lookup(settings.Type)
	if err != nil {
		return "", "", fmt.Errorf("facet %q: %w", facetName, err)
	}
	return reg.Type, reg.Renderer, nil
}

func (f *Factory) settings(facetName string) (config.FacetSettings, error) {
	settings, ok := f.facets[facetName]
	if !ok {
		return config.FacetSettings{}, fmt.Errorf("%w %q", ErrUnknownFacet, facetName)
	}
	return settings, nil
}
