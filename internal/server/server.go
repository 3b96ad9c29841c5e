package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/dejo1307/facetmcp/internal/config"
	"github.com/dejo1307/facetmcp/internal/engine"
	"github.com/dejo1307/facetmcp/internal/facets"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server and connects it to the facet engine.
type Server struct {
	mcp *mcp.Server
	eng *engine.Engine
	cfg *config.Config
}

// New creates a new MCP server wired to the given engine.
func New(eng *engine.Engine, cfg *config.Config) (*Server, error) {
	s := &Server{
		eng: eng,
		cfg: cfg,
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    cfg.Server.Name,
		Version: cfg.Server.Version,
	}, nil)

	s.mcp = mcpServer
	s.registerResources()
	s.registerTools()

	return s, nil
}

// Run starts the MCP server on the stdio transport.
func (s *Server) Run(ctx context.Context) error {
	log.Println("[server] starting MCP server on stdio transport")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// registerResources adds MCP resources for the faceting configuration.
func (s *Server) registerResources() {
	s.mcp.AddResource(&mcp.Resource{
		URI:         "facets://config",
		Name:        "Faceting Configuration",
		Description: "The loaded faceting configuration in YAML",
		MIMEType:    "application/yaml",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		content, err := s.cfg.Marshal()
		if err != nil {
			return nil, fmt.Errorf("encoding config: %w", err)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{URI: req.Params.URI, Text: string(content), MIMEType: "application/yaml"},
			},
		}, nil
	})
}

// renderFacetsArgs are the arguments for the render_facets tool.
type renderFacetsArgs struct {
	Results map[string][]facets.Option `json:"results" jsonschema:"Facet counts from the search result keyed by facet name"`
	Facet   string                     `json:"facet,omitempty" jsonschema:"Render only this facet"`
}

// buildFiltersArgs are the arguments for the build_filters tool.
type buildFiltersArgs struct {
	Filters []string `json:"filters" jsonschema:"required,URL filter parameters of the form facetName:value"`
}

type noArgs struct{}

// registerTools adds MCP tools for facet rendering and filter building.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_facet_types",
		Description: "List registered facet types with their renderer and filter parser.",
	}, s.listFacetTypes)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_facets",
		Description: "List configured facets with the facet type and renderer each one resolves to.",
	}, s.listFacets)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "render_facets",
		Description: "Render configured facets from search result facet counts. Returns markdown.",
	}, s.renderFacets)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "build_filters",
		Description: "Translate URL filter parameters (facetName:value) into search engine filter queries.",
	}, s.buildFilters)
}

func (s *Server) listFacetTypes(ctx context.Context, req *mcp.CallToolRequest, args noArgs) (*mcp.CallToolResult, any, error) {
	return jsonResult(s.eng.Registry().Registrations())
}

// facetInfo describes how a configured facet resolves.
type facetInfo struct {
	Name     string `json:"name"`
	Field    string `json:"field"`
	Type     string `json:"type,omitempty"`
	Renderer string `json:"renderer,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (s *Server) listFacets(ctx context.Context, req *mcp.CallToolRequest, args noArgs) (*mcp.CallToolResult, any, error) {
	factory := s.eng.NewFactory()

	infos := make([]facetInfo, 0, len(s.cfg.Faceting.Facets))
	for _, name := range s.cfg.Faceting.FacetNames() {
		info := facetInfo{Name: name, Field: s.cfg.Faceting.FieldFor(name)}
		facetType, rendererID, err := factory.Resolve(name)
		if err != nil {
			info.Type = s.cfg.Faceting.Facets[name].Type
			info.Error = err.Error()
		} else {
			info.Type = facetType
			info.Renderer = rendererID
		}
		infos = append(infos, info)
	}
	return jsonResult(infos)
}

func (s *Server) renderFacets(ctx context.Context, req *mcp.CallToolRequest, args renderFacetsArgs) (*mcp.CallToolResult, any, error) {
	var rendered []facets.RenderedFacet
	if args.Facet != "" {
		out, err := s.eng.RenderFacet(ctx, args.Facet, args.Results[args.Facet])
		if err != nil {
			return errorResult(fmt.Sprintf("render failed: %v", err)), nil, nil
		}
		rendered = append(rendered, out)
	} else {
		var err error
		rendered, err = s.eng.RenderFacets(ctx, args.Results)
		if err != nil {
			return errorResult(fmt.Sprintf("render failed: %v", err)), nil, nil
		}
	}

	if len(rendered) == 0 {
		return textResult("_No facets to render._"), nil, nil
	}

	var sb strings.Builder
	for i, r := range rendered {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(r.Output)
	}
	return textResult(sb.String()), nil, nil
}

func (s *Server) buildFilters(ctx context.Context, req *mcp.CallToolRequest, args buildFiltersArgs) (*mcp.CallToolResult, any, error) {
	if len(args.Filters) == 0 {
		return errorResult("filters is required"), nil, nil
	}

	queries, err := s.eng.BuildFilterQueries(args.Filters)
	if err != nil {
		return errorResult(fmt.Sprintf("building filters failed: %v", err)), nil, nil
	}
	return jsonResult(queries)
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("failed to marshal results: %v", err)), nil, nil
	}
	return textResult(string(data)), nil, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
		IsError: true,
	}
}
