// Package server hosts the websearch MCP server: a single search tool, a
// validated request pipeline, and uniform error envelopes.
package server

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/beeper/websearch-mcp/pkg/shared/toolspec"
	"github.com/beeper/websearch-mcp/pkg/shared/websearch"
)

// SearchProvider is the provider boundary. The DuckDuckGo client implements
// it; tests stub it.
type SearchProvider interface {
	Search(ctx context.Context, query string, opts websearch.Options) ([]websearch.RawHit, error)
}

// Server is the explicit per-process context: config, logger and provider,
// constructed once at startup. It holds no per-request state, so concurrent
// requests need no locking.
type Server struct {
	cfg      *Config
	log      zerolog.Logger
	provider SearchProvider
}

// New constructs a Server backed by the DuckDuckGo client.
func New(cfg *Config, log zerolog.Logger) *Server {
	cfg = cfg.WithDefaults()
	client := websearch.NewClient()
	if cfg.Provider.Endpoint != "" {
		client.Endpoint = cfg.Provider.Endpoint
	}
	client.TimeoutSecs = cfg.Provider.TimeoutSecs
	return &Server{cfg: cfg, log: log, provider: client}
}

// NewWithProvider constructs a Server with a custom provider.
func NewWithProvider(cfg *Config, log zerolog.Logger, provider SearchProvider) *Server {
	return &Server{cfg: cfg.WithDefaults(), log: log, provider: provider}
}

// MCPServer builds the MCP server with the search tool registered. The tool
// is registered with the method form of AddTool, which leaves argument
// unmarshaling and validation to the handler: schema-invalid requests must
// flow through the pipeline and come back as error envelopes, not as
// protocol errors.
func (s *Server) MCPServer(version string) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "websearch-mcp",
		Version: version,
	}, nil)
	srv.AddTool(&mcp.Tool{
		Name:        toolspec.SearchName,
		Description: toolspec.SearchDescription,
		Annotations: &mcp.ToolAnnotations{Title: "Web Search"},
		InputSchema: toolspec.SearchSchema(),
	}, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, perr := decodeArgs(req.Params.Arguments)
		if perr != nil {
			return errorResult(buildError(perr, nil)), nil
		}
		return s.Invoke(ctx, req.Params.Name, args), nil
	})
	return srv
}

// Run serves MCP over stdio until ctx is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context, version string) error {
	s.log.Info().Str("version", version).Msg("Serving MCP over stdio")
	return s.MCPServer(version).Run(ctx, &mcp.StdioTransport{})
}

// Invoke is the single catch-all boundary: it dispatches an operation by
// name and converts every pipeline failure into an error envelope with the
// MCP error flag set. Per-request failures never terminate the process.
func (s *Server) Invoke(ctx context.Context, name string, args map[string]any) *mcp.CallToolResult {
	start := time.Now()
	log := s.log.With().
		Str("request_id", uuid.NewString()).
		Str("tool", name).
		Logger()

	if name != toolspec.SearchName {
		perr := unknownTool(name)
		log.Warn().Str("code", string(perr.Code)).Msg(perr.Message)
		return errorResult(buildError(perr, args))
	}

	response, perr := s.search(ctx, args)
	if perr != nil {
		log.Warn().
			Str("code", string(perr.Code)).
			Dur("duration", time.Since(start)).
			Msg(perr.Message)
		return errorResult(buildError(perr, args))
	}

	log.Info().
		Int("results", response.Metadata.ResultCount).
		Dur("duration", time.Since(start)).
		Msg("Search completed")
	return successResult(response)
}

// search runs the pipeline: validate, call the provider exactly once,
// normalize, wrap. Each stage returns a typed error; no stage panics. The
// provider call is the only suspension point.
func (s *Server) search(ctx context.Context, args map[string]any) (*SearchResponse, *Error) {
	req, perr := s.parseSearchRequest(args)
	if perr != nil {
		return nil, perr
	}

	hits, err := s.provider.Search(ctx, req.Query, websearch.Options{
		Region:     req.Options.Region,
		SafeSearch: req.Options.SafeSearch,
		MaxResults: req.Options.NumResults,
	})
	if err != nil {
		return nil, searchFailed(err)
	}

	items, perr := normalizeHits(hits)
	if perr != nil {
		return nil, perr
	}
	return buildResponse(req, items, time.Now()), nil
}
