package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the facetmcp.yaml configuration.
type Config struct {
	Faceting FacetingConfig `yaml:"faceting"`
	Server   ServerConfig   `yaml:"server"`
}

// FacetingConfig holds the site's faceting configuration.
type FacetingConfig struct {
	// Facets maps facet name to its settings.
	Facets          map[string]FacetSettings `yaml:"facets"`
	ShowEmptyFacets bool                     `yaml:"show_empty_facets"`
}

// FacetSettings is the settings bag of a single facet.
// Keys other than type, label and field are kept in Options.
type FacetSettings struct {
	Type    string         `yaml:"type,omitempty"`
	Label   string         `yaml:"label,omitempty"`
	Field   string         `yaml:"field,omitempty"`
	Options map[string]any `yaml:",inline"`
}

// ServerConfig controls the MCP server identity.
type ServerConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// Default returns a Config with sensible defaults and no facets.
func Default() *Config {
	return &Config{
		Faceting: FacetingConfig{
			Facets: map[string]FacetSettings{},
		},
		Server: ServerConfig{
			Name:    "facetmcp",
			Version: "0.1.0",
		},
	}
}

// Load reads a configuration file from the given path.
// Missing fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration bytes.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Server.Name == "" {
		cfg.Server.Name = "facetmcp"
	}
	if cfg.Server.Version == "" {
		cfg.Server.Version = "0.1.0"
	}

	facets, err := normalizeFacetNames(cfg.Faceting.Facets)
	if err != nil {
		return nil, err
	}
	cfg.Faceting.Facets = facets

	return cfg, nil
}

// normalizeFacetNames strips the trailing dot some hosts append to nested
// configuration keys ("color." -> "color").
func normalizeFacetNames(in map[string]FacetSettings) (map[string]FacetSettings, error) {
	out := make(map[string]FacetSettings, len(in))
	for name, settings := range in {
		trimmed := strings.TrimSuffix(name, ".")
		if trimmed == "" {
			return nil, fmt.Errorf("parsing config: empty facet name")
		}
		if _, dup := out[trimmed]; dup {
			return nil, fmt.Errorf("parsing config: facet %q configured twice", trimmed)
		}
		out[trimmed] = settings
	}
	return out, nil
}

// FacetNames returns the configured facet names in sorted order.
func (c *FacetingConfig) FacetNames() []string {
	names := make([]string, 0, len(c.Facets))
	for name := range c.Facets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FieldFor returns the index field of the named facet, defaulting to the name.
func (c *FacetingConfig) FieldFor(name string) string {
	if s, ok := c.Facets[name]; ok && s.Field != "" {
		return s.Field
	}
	return name
}

// Marshal encodes the configuration back to YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
