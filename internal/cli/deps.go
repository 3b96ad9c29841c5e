package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dejo1307/facetmcp/internal/config"
	"github.com/dejo1307/facetmcp/internal/engine"
	"github.com/dejo1307/facetmcp/internal/renderers/daterange"
	"github.com/dejo1307/facetmcp/internal/renderers/numericrange"
	"github.com/dejo1307/facetmcp/internal/renderers/options"
	"github.com/dejo1307/facetmcp/internal/renderers/simple"
)

// builtinProviders are registered with every engine the CLI creates.
var builtinProviders = []engine.Provider{
	simple.Register,
	options.Register,
	numericrange.Register,
	daterange.Register,
}

// loadConfig reads the configuration, falling back to defaults only when the
// file does not exist.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: %v, using defaults\n", err)
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEngine loads the configuration and creates an engine over it.
func loadEngine(path string) (*config.Config, *engine.Engine, error) {
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, nil, err
	}
	eng, err := newEngine(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, eng, nil
}

// newEngine creates an engine with all built-in facet types registered.
func newEngine(cfg *config.Config) (*engine.Engine, error) {
	eng, err := engine.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	for _, p := range builtinProviders {
		eng.RegisterProvider(p)
	}
	return eng, nil
}
