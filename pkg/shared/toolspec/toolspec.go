package toolspec

// Shared tool schema definitions for the websearch MCP server.

const (
	SearchName        = "search"
	SearchDescription = "Search the web using DuckDuckGo. Returns structured results annotated with content type, source hostname, and topic tags."
)

// Safe search levels accepted by the search tool.
const (
	SafeSearchOff      = "OFF"
	SafeSearchModerate = "MODERATE"
	SafeSearchStrict   = "STRICT"
)

// Defaults applied independently per missing option field.
const (
	DefaultRegion     = "zh-cn"
	DefaultSafeSearch = SafeSearchModerate
	DefaultNumResults = 50
)

// SearchSchema returns the JSON schema for the search tool.
func SearchSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "The search query",
			},
			"options": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"region": map[string]any{
						"type":        "string",
						"description": "Search region code, e.g. 'zh-cn' or 'us-en'",
						"default":     DefaultRegion,
					},
					"safeSearch": map[string]any{
						"type":        "string",
						"enum":        []string{SafeSearchOff, SafeSearchModerate, SafeSearchStrict},
						"description": "Content filtering level",
						"default":     DefaultSafeSearch,
					},
					"numResults": map[string]any{
						"type":        "integer",
						"description": "Maximum number of results to request from the provider",
						"default":     DefaultNumResults,
					},
				},
			},
		},
		"required": []string{"query"},
	}
}
