package renderers

import (
	"context"
	"errors"
	"testing"

	"github.com/dejo1307/facetmcp/internal/config"
	"github.com/dejo1307/facetmcp/internal/facets"
)

// testRenderer records the facet name it was created for.
type testRenderer struct {
	id   string
	name string
}

func (r *testRenderer) FacetName() string { return r.name }
func (r *testRenderer) Render(ctx context.Context, facet *facets.Facet) (string, error) {
	return r.id + ":" + facet.Name, nil
}

type testParser struct{ id string }

func (p *testParser) Parse(raw string) (string, error) { return p.id + "(" + raw + ")", nil }

// notARenderer satisfies neither capability.
type notARenderer struct{}

func rendererCtor(id string) Constructor {
	return func(args ...string) (any, error) {
		r := &testRenderer{id: id}
		if len(args) > 0 {
			r.name = args[0]
		}
		return r, nil
	}
}

func parserCtor(id string) Constructor {
	return func(args ...string) (any, error) {
		if len(args) != 0 {
			return nil, errors.New("filter parsers take no arguments")
		}
		return &testParser{id: id}, nil
	}
}

func newTestFactory(facetsConfig map[string]config.FacetSettings) *Factory {
	reg := NewRegistry()
	reg.Register("options", "OptionsRenderer", "OptionsFilterParser")
	reg.Register("noParser", "OptionsRenderer", "")
	reg.Register("brokenRenderer", "NotARenderer", "")
	reg.Register("brokenParser", "OptionsRenderer", "NotAParser")
	reg.Register("missingImpl", "DoesNotExist", "AlsoMissing")
	reg.Register("nilRenderer", "NilRenderer", "")

	ctors := NewConstructors()
	ctors.Register(DefaultRendererID, rendererCtor(DefaultRendererID))
	ctors.Register("OptionsRenderer", rendererCtor("OptionsRenderer"))
	ctors.Register("OptionsFilterParser", parserCtor("OptionsFilterParser"))
	ctors.Register("NotARenderer", func(args ...string) (any, error) { return &notARenderer{}, nil })
	ctors.Register("NotAParser", func(args ...string) (any, error) { return &notARenderer{}, nil })
	ctors.Register("NilRenderer", func(args ...string) (any, error) {
		var r *testRenderer
		return r, nil
	})

	return NewFactory(facetsConfig, reg, ctors)
}

func TestRendererByFacetName_DeclaredType(t *testing.T) {
	f := newTestFactory(map[string]config.FacetSettings{
		"color": {Type: "options"},
	})

	r, err := f.RendererByFacetName("color")
	if err != nil {
		t.Fatalf("RendererByFacetName: %v", err)
	}
	tr, ok := r.(*testRenderer)
	if !ok {
		t.Fatalf("expected *testRenderer, got %T", r)
	}
	if tr.id != "OptionsRenderer" {
		t.Errorf("renderer id = %q, want OptionsRenderer", tr.id)
	}
	if r.FacetName() != "color" {
		t.Errorf("FacetName() = %q, want color", r.FacetName())
	}

	p, err := f.FilterParserByFacetName("color")
	if err != nil {
		t.Fatalf("FilterParserByFacetName: %v", err)
	}
	if tp, ok := p.(*testParser); !ok || tp.id != "OptionsFilterParser" {
		t.Errorf("filter parser = %#v, want OptionsFilterParser", p)
	}
}

func TestRendererByFacetName_DefaultRenderer(t *testing.T) {
	f := newTestFactory(map[string]config.FacetSettings{
		"price": {},
	})

	r, err := f.RendererByFacetName("price")
	if err != nil {
		t.Fatalf("RendererByFacetName: %v", err)
	}
	if tr := r.(*testRenderer); tr.id != DefaultRendererID || tr.name != "price" {
		t.Errorf("renderer = %+v, want default renderer for price", tr)
	}

	p, err := f.FilterParserByFacetName("price")
	if err != nil {
		t.Fatalf("FilterParserByFacetName: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil filter parser, got %#v", p)
	}
}

func TestFilterParserByFacetName_TypeWithoutParser(t *testing.T) {
	f := newTestFactory(map[string]config.FacetSettings{
		"size": {Type: "noParser"},
	})

	p, err := f.FilterParserByFacetName("size")
	if err != nil {
		t.Fatalf("FilterParserByFacetName: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil filter parser, got %#v", p)
	}
}

func TestFilterParserByFacetName_UnregisteredType(t *testing.T) {
	f := newTestFactory(map[string]config.FacetSettings{
		"swatch": {Type: "nope"},
	})

	p, err := f.FilterParserByFacetName("swatch")
	if err != nil {
		t.Fatalf("FilterParserByFacetName: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil filter parser, got %#v", p)
	}

	if _, err := f.RendererByFacetName("swatch"); !errors.Is(err, ErrUnknownFacetType) {
		t.Errorf("RendererByFacetName: expected ErrUnknownFacetType, got %v", err)
	}
}

func TestFactory_Errors(t *testing.T) {
	f := newTestFactory(map[string]config.FacetSettings{
		"unregistered":   {Type: "nope"},
		"brokenRenderer": {Type: "brokenRenderer"},
		"brokenParser":   {Type: "brokenParser"},
		"missingImpl":    {Type: "missingImpl"},
		"nilRenderer":    {Type: "nilRenderer"},
	})

	tests := []struct {
		name    string
		facet   string
		parser  bool
		wantErr error
	}{
		{"unknown facet renderer", "absent", false, ErrUnknownFacet},
		{"unknown facet parser", "absent", true, ErrUnknownFacet},
		{"unregistered type renderer", "unregistered", false, ErrUnknownFacetType},
		{"wrong renderer implementation", "brokenRenderer", false, ErrInvalidRendererType},
		{"wrong parser implementation", "brokenParser", true, ErrInvalidFilterParserType},
		{"missing renderer constructor", "missingImpl", false, ErrInstantiationFailed},
		{"missing parser constructor", "missingImpl", true, ErrInstantiationFailed},
		{"typed nil renderer", "nilRenderer", false, ErrInstantiationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got any
				err error
			)
			if tt.parser {
				got, err = f.FilterParserByFacetName(tt.facet)
			} else {
				got, err = f.RendererByFacetName(tt.facet)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if got != nil {
				t.Errorf("expected no object on error, got %#v", got)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	f := newTestFactory(map[string]config.FacetSettings{
		"color": {Type: "options"},
		"price": {},
	})

	typ, id, err := f.Resolve("color")
	if err != nil || typ != "options" || id != "OptionsRenderer" {
		t.Errorf("Resolve(color) = %q, %q, %v", typ, id, err)
	}
	typ, id, err = f.Resolve("price")
	if err != nil || typ != "" || id != DefaultRendererID {
		t.Errorf("Resolve(price) = %q, %q, %v", typ, id, err)
	}
	if _, _, err := f.Resolve("absent"); !errors.Is(err, ErrUnknownFacet) {
		t.Errorf("Resolve(absent): expected ErrUnknownFacet, got %v", err)
	}
}
