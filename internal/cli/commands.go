package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dejo1307/facetmcp/internal/facets"
	"github.com/dejo1307/facetmcp/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP tools on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
}

func runServe(cmd *cobra.Command) error {
	cfg, eng, err := loadEngine(configPath)
	if err != nil {
		return err
	}

	srv, err := server.New(eng, cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Run(cmd.Context())
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List registered facet types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, eng, err := loadEngine(configPath)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tRENDERER\tFILTER PARSER")
			for _, reg := range eng.Registry().Registrations() {
				parser := reg.FilterParser
				if parser == "" {
					parser = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", reg.Type, reg.Renderer, parser)
			}
			return w.Flush()
		},
	}
}

func newRenderCmd() *cobra.Command {
	var selected []string

	cmd := &cobra.Command{
		Use:   "render <facet> [value=count ...]",
		Short: "Render one configured facet",
		Example: `  facetmcp render color red=12 blue=3 --selected red
  facetmcp render price 10=4 250=1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := parseOptions(args[1:], selected)
			if err != nil {
				return err
			}

			_, eng, err := loadEngine(configPath)
			if err != nil {
				return err
			}

			out, err := eng.RenderFacet(cmd.Context(), args[0], opts)
			if err != nil {
				return fmt.Errorf("failed to render facet: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out.Output)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&selected, "selected", "s", nil, "Values to mark as selected")
	return cmd
}

func newFilterCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "filter <facet:value>...",
		Short:   "Build filter queries from URL filter parameters",
		Example: `  facetmcp filter color:red price:10-100`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, eng, err := loadEngine(configPath)
			if err != nil {
				return err
			}

			queries, err := eng.BuildFilterQueries(args)
			if err != nil {
				return fmt.Errorf("failed to build filters: %w", err)
			}
			for _, q := range queries {
				fmt.Fprintln(cmd.OutOrStdout(), q)
			}
			return nil
		},
	}
}

// parseOptions turns "value=count" arguments into facet options.
func parseOptions(args, selected []string) ([]facets.Option, error) {
	isSelected := make(map[string]bool, len(selected))
	for _, v := range selected {
		isSelected[v] = true
	}

	opts := make([]facets.Option, 0, len(args))
	for _, arg := range args {
		i := strings.LastIndex(arg, "=")
		if i <= 0 {
			return nil, fmt.Errorf("invalid option %q: expected value=count", arg)
		}
		value := arg[:i]
		count, err := strconv.Atoi(arg[i+1:])
		if err != nil {
			return nil, fmt.Errorf("invalid option %q: count must be a number", arg)
		}
		opts = append(opts, facets.Option{
			Value:    value,
			Count:    count,
			Selected: isSelected[value],
		})
	}
	return opts, nil
}
