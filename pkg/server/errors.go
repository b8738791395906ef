package server

import "fmt"

// Code discriminates pipeline failures. Every failure in the request
// pipeline is one of these, and the boundary maps them uniformly to an
// error envelope.
type Code string

const (
	CodeInvalidArgs  Code = "INVALID_ARGS"
	CodeUnknownTool  Code = "UNKNOWN_TOOL"
	CodeSearchFailed Code = "SEARCH_FAILED"
)

// Error is the discriminated error returned by pipeline stages. Stages
// return it instead of panicking; the boundary never sees anything else.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func invalidArgs(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidArgs, Message: fmt.Sprintf(format, args...)}
}

func unknownTool(name string) *Error {
	return &Error{Code: CodeUnknownTool, Message: fmt.Sprintf("unknown tool: %s", name)}
}

// searchFailed wraps a provider or normalization failure, carrying the
// underlying message unchanged.
func searchFailed(err error) *Error {
	return &Error{Code: CodeSearchFailed, Message: err.Error()}
}
