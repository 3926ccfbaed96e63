package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// Fetcher issues a single request and returns its response.
type Fetcher interface {
	Fetch(ctx context.Context, url string, opts *Options) (*Response, error)
}

// FetcherFunc adapts a plain function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string, opts *Options) (*Response, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, url string, opts *Options) (*Response, error) {
	return f(ctx, url, opts)
}

// Options describes a request beyond its URL. A nil *Options is a GET with no
// body and no extra headers.
type Options struct {
	// Method is the HTTP method. Empty means GET.
	Method string
	// Body is the raw request payload.
	Body []byte
	// Header holds request headers.
	Header http.Header
}

var (
	// ErrInvalidURL indicates a malformed or relative URL.
	ErrInvalidURL = errors.New("invalid URL provided")

	// ErrInvalidMethod indicates an HTTP method the capability does not support.
	ErrInvalidMethod = errors.New("invalid HTTP method")

	// ErrBodyNotAllowed is returned when a GET or HEAD request carries a body.
	ErrBodyNotAllowed = errors.New("request with GET/HEAD method cannot have body")

	// ErrMarshalRequest wraps failures while encoding the request payload.
	ErrMarshalRequest = errors.New("failed to create request")

	// ErrUnmarshalResponse wraps failures while decoding the host response.
	ErrUnmarshalResponse = errors.New("failed to unmarshal response")
)

// JSONOptions encodes v as the request body and sets the JSON content type.
func JSONOptions(method string, v any) (*Options, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Join(ErrMarshalRequest, err)
	}
	return &Options{
		Method: method,
		Body:   b,
		Header: http.Header{"Content-Type": []string{"application/json"}},
	}, nil
}

// MethodOrDefault returns the upper-cased method, or GET when unset.
func (o *Options) MethodOrDefault() string {
	if o == nil || o.Method == "" {
		return http.MethodGet
	}
	return strings.ToUpper(o.Method)
}

// Clone returns a deep copy of o. Cloning nil returns nil.
func (o *Options) Clone() *Options {
	if o == nil {
		return nil
	}
	c := &Options{Method: o.Method, Header: o.Header.Clone()}
	if o.Body != nil {
		c.Body = append([]byte{}, o.Body...)
	}
	return c
}

func isValidMethod(method string) bool {
	switch method {
	case http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions:
		return true
	default:
		return false
	}
}
