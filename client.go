package orggraph

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/orgtool/orggraph/internal/varcheck"
	"github.com/orgtool/orggraph/pkg/strictjson"
)

// RequestModifier allows tweaking the HTTP request before it is sent. It is
// typically used to set authentication headers.
type RequestModifier func(*http.Request)

// Client executes the registered operations against a single GraphQL
// endpoint.
//
// # Immutable Pattern
//
// The Client's With* methods (WithDebug, WithLogger, WithRequestModifier)
// follow an immutable pattern: they return a new Client instance rather
// than modifying the receiver. This allows for safe concurrent use and
// makes it clear when configuration changes take effect.
//
// Always use the returned Client:
//
//	client = client.WithDebug(true)  // Correct
//	client.WithDebug(true)            // Wrong - original client unchanged
//
// A Client holds no per-call state; the only state shared between
// concurrent calls is the pooled *http.Client.
type Client struct {
	url             string // GraphQL server URL.
	httpClient      *http.Client
	requestModifier RequestModifier
	logger          *logrus.Logger
	debug           bool
}

// NewClient creates a client targeting the specified GraphQL endpoint URL.
// If httpClient is nil, then http.DefaultClient is used.
func NewClient(url string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		url:        url,
		httpClient: httpClient,
	}
}

// clone creates a copy of the Client with all fields preserved. This helper
// prevents field-copying bugs when adding new fields to Client.
func (c *Client) clone() *Client {
	return &Client{
		url:             c.url,
		httpClient:      c.httpClient,
		requestModifier: c.requestModifier,
		logger:          c.logger,
		debug:           c.debug,
	}
}

// WithRequestModifier returns a new Client with the request modifier set.
// This allows you to reuse the same TCP connection for multiple slightly
// different requests to the same server (e.g., different authentication
// headers for multitenant applications).
func (c *Client) WithRequestModifier(f RequestModifier) *Client {
	clone := c.clone()
	clone.requestModifier = f
	return clone
}

// WithDebug returns a new Client with debug mode enabled or disabled. When
// enabled, errors carry request/response bodies in their extensions, which
// is useful for troubleshooting API issues.
func (c *Client) WithDebug(debug bool) *Client {
	clone := c.clone()
	clone.debug = debug
	return clone
}

// WithLogger returns a new Client that logs one entry per call through the
// given logger.
func (c *Client) WithLogger(logger *logrus.Logger) *Client {
	clone := c.clone()
	clone.logger = logger
	return clone
}

// Exec executes the named registered operation with the given variables and
// unmarshals the response data into out. out must be a non-nil pointer to a
// struct matching the operation's selection set, or nil if the caller does
// not need the data.
//
// On partial success (data and errors in the same response) out is
// populated as far as the data allows AND a non-nil error is returned; it
// is the caller's decision how to proceed.
func (c *Client) Exec(
	ctx context.Context,
	operation string,
	variables map[string]any,
	out any,
) error {
	data, resp, respBuf, errs := c.execRaw(ctx, operation, variables)
	errs = c.processResponse(out, data, resp, respBuf, errs)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ExecRaw executes the named registered operation and returns the raw data
// payload without decoding it.
func (c *Client) ExecRaw(
	ctx context.Context,
	operation string,
	variables map[string]any,
) ([]byte, error) {
	data, _, _, errs := c.execRaw(ctx, operation, variables)
	if len(errs) > 0 {
		return data, errs
	}
	return data, nil
}

func (c *Client) execRaw(
	ctx context.Context,
	operation string,
	variables map[string]any,
) ([]byte, *http.Response, io.Reader, Errors) {
	op, ok := LookupOperation(operation)
	if !ok {
		return nil, nil, nil, newSimpleErrors(
			ErrInvalidArgument,
			fmt.Errorf("unknown operation %q", operation),
		)
	}

	// Variable-shape mismatches are caught here, before any network I/O.
	if err := varcheck.Validate(op.Variables, variables); err != nil {
		errs := newSimpleErrors(ErrInvalidArgument, err)
		c.logCall(op, 0, errs)
		return nil, nil, nil, errs
	}

	start := time.Now()
	data, resp, respBuf, errs := c.request(ctx, op, variables)
	if len(errs) == 0 && len(data) == 0 {
		// A response must carry data or errors; null data with an empty
		// errors array means the remote broke the contract.
		errs = newSimpleErrors(
			ErrDecode,
			errors.New("response carries null data and no errors"),
		)
	}
	c.logCall(op, time.Since(start), errs)
	return data, resp, respBuf, errs
}

func (c *Client) request(
	ctx context.Context,
	op *Operation,
	variables map[string]any,
) ([]byte, *http.Response, io.Reader, Errors) {
	request, reqBody, err := c.BuildRequest(ctx, op, variables)
	if err != nil {
		e := c.NewRequestError(
			ErrTransport,
			fmt.Errorf("problem constructing request: %w", err),
			request,
			nil,
			bytes.NewReader(reqBody),
			nil,
		)
		return nil, nil, nil, Errors{e}
	}

	resp, err := c.httpClient.Do(request)
	if err != nil {
		e := c.NewRequestError(
			ErrTransport,
			err,
			request,
			nil,
			bytes.NewReader(reqBody),
			nil,
		)
		return nil, nil, nil, Errors{e}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		e := c.NewRequestError(
			ErrTransport,
			fmt.Errorf("%v; body: %q", resp.Status, body),
			request,
			nil,
			bytes.NewReader(reqBody),
			nil,
		)
		return nil, nil, nil, Errors{e}
	}

	r, err := handleGzipResponse(resp, resp.Body)
	if err != nil {
		return nil, nil, nil, newSimpleErrors(ErrDecode, err)
	}
	defer func() { _ = r.Close() }()

	// Keep a copy of the response body around for error decoration when
	// debug mode is on.
	var respBody []byte
	var respReader *bytes.Reader
	if c.debug {
		respBody, err = io.ReadAll(r)
		if err != nil {
			return nil, nil, nil, newSimpleErrors(ErrDecode, err)
		}
		respReader = bytes.NewReader(respBody)
		r = io.NopCloser(respReader)
	}

	rawData, gqlErrors := c.DecodeResponse(r)

	if respReader != nil {
		_, _ = respReader.Seek(0, io.SeekStart)
	}

	if len(gqlErrors) > 0 {
		if gqlErrors[0].GetCode() == ErrDecode {
			we := c.NewRequestError(
				ErrDecode,
				fmt.Errorf("%s", gqlErrors[0].Message),
				request,
				resp,
				bytes.NewReader(reqBody),
				bytes.NewReader(respBody),
			)
			return nil, nil, nil, Errors{we}
		}

		if c.debug &&
			(gqlErrors[0].Extensions == nil || gqlErrors[0].Extensions["internal"] == nil) {
			gqlErrors[0] = c.DecorateError(
				gqlErrors[0],
				request,
				resp,
				bytes.NewReader(reqBody),
				bytes.NewReader(respBody),
			)
		}

		return rawData, resp, respReader, gqlErrors
	}

	return rawData, resp, respReader, nil
}

// BuildRequest constructs the HTTP request for an operation: a POST whose
// JSON body carries the document text, the operation name and the variable
// set. It returns the request and the body bytes (useful for error
// decoration).
func (c *Client) BuildRequest(
	ctx context.Context,
	op *Operation,
	variables map[string]any,
) (*http.Request, []byte, error) {
	in := struct {
		Query         string         `json:"query"`
		OperationName string         `json:"operationName"`
		Variables     map[string]any `json:"variables,omitempty"`
	}{
		Query:         op.Document,
		OperationName: op.Name,
		Variables:     variables,
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(in); err != nil {
		return nil, nil, err
	}

	reqBody := buf.Bytes()
	request, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.url,
		bytes.NewReader(reqBody),
	)
	if err != nil {
		return nil, reqBody, err
	}
	request.Header.Add("Content-Type", "application/json")

	if c.requestModifier != nil {
		c.requestModifier(request)
	}

	return request, reqBody, nil
}

// DecodeResponse decodes a GraphQL JSON response into raw data and errors.
func (c *Client) DecodeResponse(reader io.Reader) ([]byte, Errors) {
	var out struct {
		Data   *json.RawMessage
		Errors Errors
	}

	if err := json.NewDecoder(reader).Decode(&out); err != nil {
		return nil, newSimpleErrors(ErrDecode, err)
	}

	var rawData []byte
	if out.Data != nil && len(*out.Data) > 0 && string(*out.Data) != "null" {
		rawData = *out.Data
	}

	if len(out.Errors) > 0 {
		return rawData, out.Errors
	}

	return rawData, nil
}

func (c *Client) processResponse(
	out any,
	data []byte,
	resp *http.Response,
	respBuf io.Reader,
	errs Errors,
) Errors {
	if len(data) > 0 && out != nil {
		if err := strictjson.Unmarshal(data, out); err != nil {
			we := c.DecorateError(
				newError(ErrDecode, err),
				nil,
				resp,
				nil,
				respBuf,
			)
			errs = append(errs, we)
		}
	}
	return errs
}

// handleGzipResponse wraps the response body reader with a gzip
// decompressor if the Content-Encoding header indicates gzip compression.
func handleGzipResponse(
	resp *http.Response,
	bodyReader io.Reader,
) (io.ReadCloser, error) {
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gr, err := gzip.NewReader(bodyReader)
		if err != nil {
			return nil, fmt.Errorf("problem trying to create gzip reader: %w", err)
		}
		return gr, nil
	}
	return io.NopCloser(bodyReader), nil
}

// DecorateError decorates an error with request/response information if
// debug mode is enabled.
func (c *Client) DecorateError(
	err Error,
	req *http.Request,
	resp *http.Response,
	reqBody,
	respBody io.Reader,
) Error {
	if !c.debug {
		return err
	}

	if req != nil && reqBody != nil {
		err = err.withRequest(req, reqBody)
	}

	if resp != nil && respBody != nil {
		err = err.withResponse(resp, respBody)
	}

	return err
}

// NewRequestError creates a new error with the given code and decorates it
// with request/response information if debug mode is enabled.
func (c *Client) NewRequestError(
	code string,
	err error,
	req *http.Request,
	resp *http.Response,
	reqBody,
	respBody io.Reader,
) Error {
	e := newError(code, err)
	return c.DecorateError(e, req, resp, reqBody, respBody)
}

func (c *Client) logCall(op *Operation, elapsed time.Duration, errs Errors) {
	if c.logger == nil {
		return
	}
	entry := c.logger.WithFields(logrus.Fields{
		"operation": op.Name,
		"kind":      string(op.Kind),
		"duration":  elapsed,
	})
	if len(errs) > 0 {
		entry.WithField("errors", len(errs)).Warn("graphql call failed")
		return
	}
	entry.Debug("graphql call completed")
}
