package server

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/beeper/websearch-mcp/pkg/shared/classify"
)

// Suggestion is the fixed hint attached to every error envelope, regardless
// of the failure kind.
const Suggestion = "请尝试调整搜索关键词、减少结果数量或更换搜索区域 (try adjusting the keywords, reducing numResults, or changing the region)"

// buildResponse assembles the success envelope around the normalized items.
func buildResponse(req *SearchRequest, items []SearchResultItem, now time.Time) *SearchResponse {
	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title
	}
	return &SearchResponse{
		Type: "search_results",
		Data: items,
		Metadata: ResponseMetadata{
			Query:       req.Query,
			Timestamp:   now.UTC().Format(time.RFC3339),
			ResultCount: len(items),
			SearchContext: SearchContext{
				Region:     req.Options.Region,
				SafeSearch: req.Options.SafeSearch,
			},
			QueryAnalysis: QueryAnalysis{
				Language: classify.Language(req.Query),
				Topics:   classify.Topics(titles),
			},
		},
	}
}

// buildError assembles the failure envelope, echoing whatever raw request
// fields are still extractable.
func buildError(perr *Error, rawArgs map[string]any) *SearchError {
	return &SearchError{
		Type:       "search_error",
		Message:    perr.Message,
		Suggestion: Suggestion,
		Context:    echoContext(rawArgs),
	}
}

func echoContext(rawArgs map[string]any) ErrorContext {
	var ec ErrorContext
	if rawArgs == nil {
		return ec
	}
	if q, ok := rawArgs["query"].(string); ok {
		ec.Query = q
	}
	if opts, ok := rawArgs["options"].(map[string]any); ok {
		ec.Options = opts
	}
	return ec
}

// successResult wraps an envelope as pretty-printed MCP text content.
func successResult(payload any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: mustJSON(payload)}},
	}
}

// errorResult wraps the error envelope with the MCP error flag set.
// Failures are returned as data, never as protocol errors.
func errorResult(payload *SearchError) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: mustJSON(payload)}},
		IsError: true,
	}
}

// mustJSON pretty-prints payload, returning an error document on failure.
func mustJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal: %s"}`, err.Error())
	}
	return string(data)
}
