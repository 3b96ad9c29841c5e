package cli

import (
	"github.com/spf13/cobra"
)

var (
	configPath string // global --config flag

	// Version is set via ldflags at build time
	Version = "dev"
)

// NewRootCmd creates the root command for the 'facetmcp' CLI.
// Without a subcommand it serves MCP on stdio.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "facetmcp",
		Short:   "Facet renderer factory and filter builder",
		Version: Version,
		Long: `facetmcp renders search facets according to a faceting configuration
and translates URL filter parameters into search engine filter queries.

Commands:
  serve                        Serve MCP tools on stdio (default)
  types                        List registered facet types
  render <facet> [value=count] Render one configured facet
  filter <facet:value>...      Build filter queries`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "facetmcp.yaml", "Path to the faceting configuration")

	rootCmd.AddCommand(
		newServeCmd(),
		newTypesCmd(),
		newRenderCmd(),
		newFilterCmd(),
	)

	return rootCmd
}
