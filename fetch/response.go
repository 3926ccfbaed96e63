package fetch

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
)

var (
	// ErrBodyUsed is returned when a response body is read a second time.
	ErrBodyUsed = errors.New("response body already consumed")

	// ErrEmptyBody is returned by JSON when the response carries no body.
	ErrEmptyBody = errors.New("response body is empty")
)

// BodyFunc produces a response body on demand.
type BodyFunc func() ([]byte, error)

// Response is the result of a completed fetch.
type Response struct {
	// OK reports whether Status is in the 2xx range.
	OK bool
	// Status is the numeric HTTP status code.
	Status int
	// StatusText is the HTTP status text, empty for unknown codes.
	StatusText string
	// URL is the URL the request was made to.
	URL string
	// Header contains response headers.
	Header http.Header

	body BodyFunc
	used atomic.Bool
}

// NewResponse builds a response whose OK flag is derived from status. body
// may be nil for responses without a payload.
func NewResponse(status int, header http.Header, body BodyFunc) *Response {
	if header == nil {
		header = make(http.Header)
	}
	return &Response{
		OK:         status >= 200 && status <= 299,
		Status:     status,
		StatusText: http.StatusText(status),
		Header:     header,
		body:       body,
	}
}

// WithBody replaces the body producer and returns r.
func (r *Response) WithBody(body BodyFunc) *Response {
	r.body = body
	return r
}

// BodyUsed reports whether the body has already been read.
func (r *Response) BodyUsed() bool { return r.used.Load() }

// Bytes runs the body producer and returns the payload. It can be called once.
func (r *Response) Bytes() ([]byte, error) {
	if r.used.Swap(true) {
		return nil, ErrBodyUsed
	}
	if r.body == nil {
		return nil, nil
	}
	return r.body()
}

// Text returns the body as a string.
func (r *Response) Text() (string, error) {
	b, err := r.Bytes()
	return string(b), err
}

// JSON decodes the body into dst.
func (r *Response) JSON(dst any) error {
	b, err := r.Bytes()
	if err != nil {
		return err
	}
	if len(b) == 0 {
		return ErrEmptyBody
	}
	return json.Unmarshal(b, dst)
}
