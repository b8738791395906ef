package server

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/beeper/websearch-mcp/pkg/shared/toolspec"
)

// decodeArgs decodes wire-level tool arguments into a map. The SDK hands
// raw JSON to method-registered handlers; a payload that is not a JSON
// object is an INVALID_ARGS outcome like any other.
func decodeArgs(raw any) (map[string]any, *Error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return v, nil
	case json.RawMessage:
		return unmarshalArgs(v)
	case []byte:
		return unmarshalArgs(v)
	default:
		return nil, invalidArgs("arguments must be an object")
	}
}

func unmarshalArgs(data []byte) (map[string]any, *Error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var args map[string]any
	if err := json.Unmarshal(data, &args); err != nil {
		return nil, invalidArgs("arguments must be an object: %v", err)
	}
	return args, nil
}

// Argument readers over the decoded tool arguments. Absence is only an
// error when required; a present value of the wrong type always is.

func readString(args map[string]any, key string, required bool) (string, *Error) {
	v, ok := args[key]
	if !ok || v == nil {
		if required {
			return "", invalidArgs("parameter %q is required", key)
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", invalidArgs("parameter %q must be a string", key)
	}
	return s, nil
}

func readInt(args map[string]any, key string, defaultVal int) (int, *Error) {
	v, ok := args[key]
	if !ok || v == nil {
		return defaultVal, nil
	}
	switch n := v.(type) {
	case float64:
		// JSON numbers decode as float64; a fractional value is not an
		// integer, so it rejects rather than truncating.
		if n != math.Trunc(n) {
			return 0, invalidArgs("parameter %q must be an integer", key)
		}
		return int(n), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	}
	return 0, invalidArgs("parameter %q must be an integer", key)
}

func readObject(args map[string]any, key string) (map[string]any, *Error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, invalidArgs("parameter %q must be an object", key)
	}
	return m, nil
}

// parseSearchRequest validates raw tool arguments and applies the configured
// default independently for each missing option field. Validation failure is
// a normal typed outcome, never a panic.
func (s *Server) parseSearchRequest(args map[string]any) (*SearchRequest, *Error) {
	query, perr := readString(args, "query", true)
	if perr != nil {
		return nil, perr
	}
	if strings.TrimSpace(query) == "" {
		return nil, invalidArgs("parameter %q must not be empty", "query")
	}

	req := &SearchRequest{
		Query: query,
		Options: SearchOptions{
			Region:     s.cfg.Search.Region,
			SafeSearch: s.cfg.Search.SafeSearch,
			NumResults: s.cfg.Search.NumResults,
		},
	}

	opts, perr := readObject(args, "options")
	if perr != nil {
		return nil, perr
	}
	if opts == nil {
		return req, nil
	}

	region, perr := readString(opts, "region", false)
	if perr != nil {
		return nil, perr
	}
	if region != "" {
		req.Options.Region = region
	}

	level, perr := readString(opts, "safeSearch", false)
	if perr != nil {
		return nil, perr
	}
	if level != "" {
		switch level {
		case toolspec.SafeSearchOff, toolspec.SafeSearchModerate, toolspec.SafeSearchStrict:
			req.Options.SafeSearch = level
		default:
			return nil, invalidArgs("parameter %q must be one of OFF, MODERATE or STRICT", "safeSearch")
		}
	}

	numResults, perr := readInt(opts, "numResults", req.Options.NumResults)
	if perr != nil {
		return nil, perr
	}
	if numResults <= 0 {
		return nil, invalidArgs("parameter %q must be a positive integer", "numResults")
	}
	req.Options.NumResults = numResults

	return req, nil
}
