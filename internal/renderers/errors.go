package renderers

import "errors"

var (
	// ErrUnknownFacet is returned when a facet name has no configuration entry.
	ErrUnknownFacet = errors.New("unknown facet")
	// ErrUnknownFacetType is returned when a facet declares a type that was never registered.
	ErrUnknownFacetType = errors.New("no renderer configured for facet type")
	// ErrInvalidRendererType is returned when an instantiated object is not a facets.Renderer.
	ErrInvalidRendererType = errors.New("not an implementation of facets.Renderer")
	// ErrInvalidFilterParserType is returned when an instantiated object is not a facets.FilterParser.
	ErrInvalidFilterParserType = errors.New("not an implementation of facets.FilterParser")
	// ErrInstantiationFailed wraps failures of the instantiation service.
	ErrInstantiationFailed = errors.New("instantiation failed")
)
