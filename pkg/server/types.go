package server

import "github.com/beeper/websearch-mcp/pkg/shared/classify"

// SearchOptions are the resolved per-request search parameters.
type SearchOptions struct {
	Region     string `json:"region"`
	SafeSearch string `json:"safeSearch"`
	NumResults int    `json:"numResults"`
}

// SearchRequest is a validated search invocation with defaults applied.
type SearchRequest struct {
	Query   string
	Options SearchOptions
}

// ResultMetadata annotates a single result item.
type ResultMetadata struct {
	Type   classify.ContentType `json:"type"`
	Source string               `json:"source"`
}

// SearchResultItem is one normalized search hit.
type SearchResultItem struct {
	Title       string         `json:"title"`
	URL         string         `json:"url"`
	Description string         `json:"description"`
	Metadata    ResultMetadata `json:"metadata"`
}

// SearchContext echoes the options a search actually ran with.
type SearchContext struct {
	Region     string `json:"region"`
	SafeSearch string `json:"safeSearch"`
}

// QueryAnalysis is the per-request classification of the query itself.
type QueryAnalysis struct {
	Language string   `json:"language"`
	Topics   []string `json:"topics"`
}

// ResponseMetadata is the request-level metadata attached to a response.
type ResponseMetadata struct {
	Query         string        `json:"query"`
	Timestamp     string        `json:"timestamp"`
	ResultCount   int           `json:"resultCount"`
	SearchContext SearchContext `json:"searchContext"`
	QueryAnalysis QueryAnalysis `json:"queryAnalysis"`
}

// SearchResponse is the success envelope. Data preserves provider order.
type SearchResponse struct {
	Type     string             `json:"type"` // always "search_results"
	Data     []SearchResultItem `json:"data"`
	Metadata ResponseMetadata   `json:"metadata"`
}

// ErrorContext echoes the original request on failure. Fields may be absent
// when the request was unparsable; the echo is best-effort.
type ErrorContext struct {
	Query   string         `json:"query,omitempty"`
	Options map[string]any `json:"options,omitempty"`
}

// SearchError is the failure envelope.
type SearchError struct {
	Type       string       `json:"type"` // always "search_error"
	Message    string       `json:"message"`
	Suggestion string       `json:"suggestion"`
	Context    ErrorContext `json:"context"`
}
