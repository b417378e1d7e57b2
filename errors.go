package orggraph

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Error codes attached to locally-raised errors under extensions["code"].
// Errors taken verbatim from a server's "errors" array carry whatever
// extensions the server set and classify as ErrGraphQL.
const (
	// ErrInvalidArgument means the variable set did not match the
	// operation's declared variables. Raised before any network I/O.
	ErrInvalidArgument = "invalid_argument"

	// ErrTransport covers connection failures, timeouts, cancellation and
	// non-2xx HTTP statuses. Never retried by the client.
	ErrTransport = "transport_error"

	// ErrDecode means the response data did not match the operation's
	// selection set: a contract violation against the remote schema,
	// non-retryable.
	ErrDecode = "decode_error"

	// ErrGraphQL classifies errors reported by the server in the response
	// body. Data may coexist with them (partial success).
	ErrGraphQL = "graphql_error"
)

// Errors represents the "errors" array in a response from a GraphQL server,
// plus any locally-raised errors. When returned via the error interface the
// slice holds at least one element.
//
// Specification: https://spec.graphql.org/October2021/#sec-Errors.
type Errors []Error

// Error is a single GraphQL error entry.
type Error struct {
	Message    string          `json:"message"`
	Path       []any           `json:"path,omitempty"`
	Locations  []ErrorLocation `json:"locations,omitempty"`
	Extensions map[string]any  `json:"extensions,omitempty"`
}

type ErrorLocation struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Error implements the error interface.
func (e Error) Error() string {
	if len(e.Path) > 0 {
		return fmt.Sprintf("Message: %s, Path: %v", e.Message, e.Path)
	}
	return fmt.Sprintf("Message: %s", e.Message)
}

// Error implements the error interface.
func (e Errors) Error() string {
	b := strings.Builder{}
	for i, err := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

// GetCode returns the raw error code from the extensions, or an empty
// string if not present.
func (e Error) GetCode() string {
	if e.Extensions == nil {
		return ""
	}
	code, ok := e.Extensions["code"].(string)
	if !ok {
		return ""
	}
	return code
}

// Code classifies the error within the client's taxonomy. Locally-raised
// errors carry one of the Err* constants; everything else came from the
// server's errors array and classifies as ErrGraphQL.
func (e Error) Code() string {
	switch c := e.GetCode(); c {
	case ErrInvalidArgument, ErrTransport, ErrDecode:
		return c
	}
	return ErrGraphQL
}

// HasCode reports whether err is an Errors value containing at least one
// entry classified with the given code.
func HasCode(err error, code string) bool {
	var errs Errors
	if !errors.As(err, &errs) {
		return false
	}
	for _, e := range errs {
		if e.Code() == code {
			return true
		}
	}
	return false
}

// newError creates a new Error with the given code and underlying error.
func newError(code string, err error) Error {
	return Error{
		Message: err.Error(),
		Extensions: map[string]any{
			"code": code,
		},
	}
}

// newSimpleErrors creates an Errors slice with a single error, wrapping the
// given error with the specified code.
func newSimpleErrors(code string, err error) Errors {
	return Errors{newError(code, err)}
}

func (e Error) getInternalExtension() map[string]any {
	if e.Extensions == nil {
		return make(map[string]any)
	}
	if ex, ok := e.Extensions["internal"]; ok {
		return ex.(map[string]any)
	}
	return make(map[string]any)
}

// withDebugInfo adds debug information to the error's internal extensions.
// It reads the body from bodyReader and stores it along with headers under
// the specified infoType key ("request" or "response").
func (e Error) withDebugInfo(
	infoType string,
	headers http.Header,
	bodyReader io.Reader,
) Error {
	internal := e.getInternalExtension()
	bodyBytes, err := io.ReadAll(bodyReader)
	if err != nil {
		internal["error"] = err
	} else {
		internal[infoType] = map[string]any{
			"headers": headers,
			"body":    string(bodyBytes),
		}
	}

	if e.Extensions == nil {
		e.Extensions = make(map[string]any)
	}
	e.Extensions["internal"] = internal
	return e
}

func (e Error) withRequest(req *http.Request, bodyReader io.Reader) Error {
	return e.withDebugInfo("request", req.Header, bodyReader)
}

func (e Error) withResponse(res *http.Response, bodyReader io.Reader) Error {
	return e.withDebugInfo("response", res.Header, bodyReader)
}
