package renderers

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	reg.Register("options", "OptionsFacetRenderer", "OptionsFilterParser")
	reg.Register("plain", "PlainRenderer", "")

	tests := []struct {
		facetType string
		want      Registration
	}{
		{"options", Registration{Type: "options", Renderer: "OptionsFacetRenderer", FilterParser: "OptionsFilterParser"}},
		{"plain", Registration{Type: "plain", Renderer: "PlainRenderer"}},
	}

	for _, tt := range tests {
		t.Run(tt.facetType, func(t *testing.T) {
			got, err := reg.Lookup(tt.facetType)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tt.facetType, err)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %+v, want %+v", tt.facetType, got, tt.want)
			}
		})
	}
}

func TestRegistry_LastRegistrationWins(t *testing.T) {
	reg := NewRegistry()
	reg.Register("options", "OptionsFacetRenderer", "OptionsFilterParser")
	reg.Register("options", "OtherRenderer", "")

	got, err := reg.Lookup("options")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	want := Registration{Type: "options", Renderer: "OtherRenderer"}
	if got != want {
		t.Errorf("Lookup = %+v, want %+v", got, want)
	}
	if got.HasFilterParser() {
		t.Error("expected filter parser to be cleared by re-registration")
	}
	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}
}

func TestRegistry_UnknownType(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Lookup("missing")
	if !errors.Is(err, ErrUnknownFacetType) {
		t.Fatalf("expected ErrUnknownFacetType, got %v", err)
	}
}

func TestRegistry_RegistrationsSorted(t *testing.T) {
	reg := NewRegistry()
	reg.Register("numericRange", "b", "")
	reg.Register("dateRange", "a", "")
	reg.Register("options", "c", "")

	regs := reg.Registrations()
	if len(regs) != 3 {
		t.Fatalf("expected 3 registrations, got %d", len(regs))
	}
	for i, want := range []string{"dateRange", "numericRange", "options"} {
		if regs[i].Type != want {
			t.Errorf("regs[%d].Type = %q, want %q", i, regs[i].Type, want)
		}
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := NewRegistry()
	reg.Register("options", "OptionsFacetRenderer", "OptionsFilterParser")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			reg.Register(fmt.Sprintf("type%d", i), "R", "P")
		}(i)
		go func() {
			defer wg.Done()
			got, err := reg.Lookup("options")
			if err != nil || got.Renderer != "OptionsFacetRenderer" {
				t.Errorf("Lookup during registration = %+v, %v", got, err)
			}
		}()
	}
	wg.Wait()

	if reg.Len() != 17 {
		t.Errorf("Len() = %d, want 17", reg.Len())
	}
}

func TestConstructors_Create(t *testing.T) {
	ctors := NewConstructors()
	ctors.Register("Echo", func(args ...string) (any, error) {
		return args, nil
	})
	ctors.Register("Broken", func(args ...string) (any, error) {
		return nil, errors.New("boom")
	})
	ctors.Register("Nil", func(args ...string) (any, error) {
		return nil, nil
	})
	ctors.Register("TypedNil", func(args ...string) (any, error) {
		var r *testRenderer
		return r, nil
	})

	obj, err := ctors.Create("Echo", "color")
	if err != nil {
		t.Fatalf("Create(Echo): %v", err)
	}
	if args, ok := obj.([]string); !ok || len(args) != 1 || args[0] != "color" {
		t.Errorf("Create(Echo) = %#v, want [color]", obj)
	}

	for _, id := range []string{"Missing", "Broken", "Nil", "TypedNil"} {
		if _, err := ctors.Create(id); !errors.Is(err, ErrInstantiationFailed) {
			t.Errorf("Create(%q): expected ErrInstantiationFailed, got %v", id, err)
		}
	}

	if got := ctors.IDs(); len(got) != 4 || got[0] != "Broken" {
		t.Errorf("IDs() = %v, want sorted ids", got)
	}
}
