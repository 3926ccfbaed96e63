package fetchmock

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/tarmac-project/fetchkit/fetch"
)

var (
	// ErrUnscripted is returned when an invocation finds no scripted outcome.
	ErrUnscripted = errors.New("no scripted response for fetch call")

	// ErrPending is returned by ExpectationsWereMet when scripted outcomes remain.
	ErrPending = errors.New("scripted responses were not consumed")
)

// Response describes a scripted fetch result.
type Response struct {
	// OK is reported as-is on the fetch response.
	OK bool
	// Status is the HTTP status code. Zero means 200 when OK and 500 otherwise.
	Status int
	// Header holds response headers.
	Header http.Header
	// Body produces the payload when the caller reads it. Values are encoded
	// as JSON, except []byte and json.RawMessage which are returned verbatim.
	// A nil Body reads as an empty payload.
	Body func() any
}

// Call captures a single invocation made against the stand-in.
type Call struct {
	// URL is the requested URL exactly as passed by the caller.
	URL string
	// Options is a copy of the options passed by the caller; nil when none were given.
	Options *fetch.Options
}

// Config controls construction of a Mock.
type Config struct {
	// DefaultResponse, when set, answers invocations that find the queue empty.
	DefaultResponse *Response
}

type outcome struct {
	res *Response
	err error
}

// Mock implements fetch.Fetcher with scripted outcomes and a call ledger.
// It is safe for concurrent use; invocations are served in arrival order.
type Mock struct {
	mu       sync.Mutex
	queue    []outcome
	calls    []Call
	fallback *Response
}

var _ fetch.Fetcher = (*Mock)(nil)

// New creates an empty stand-in.
func New(config Config) *Mock {
	return &Mock{fallback: config.DefaultResponse}
}

// Install creates a stand-in owned by t and resets it when t finishes.
func Install(t testing.TB) *Mock {
	t.Helper()
	m := New(Config{})
	t.Cleanup(m.Reset)
	return m
}

// QueueResponse scripts the result of the next unanswered invocation.
func (m *Mock) QueueResponse(r Response) *Mock {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, outcome{res: &r})
	return m
}

// QueueJSON scripts a response with the given status whose body encodes v.
func (m *Mock) QueueJSON(status int, v any) *Mock {
	return m.QueueResponse(Response{
		OK:     status >= 200 && status <= 299,
		Status: status,
		Header: http.Header{"Content-Type": []string{"application/json"}},
		Body:   func() any { return v },
	})
}

// QueueRejection scripts the next unanswered invocation to fail with err.
func (m *Mock) QueueRejection(err error) *Mock {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, outcome{err: err})
	return m
}

// Fetch records the invocation and answers it with the oldest scripted outcome.
// A context that is already done fails the call without consuming an outcome.
func (m *Mock) Fetch(ctx context.Context, url string, opts *fetch.Options) (*fetch.Response, error) {
	ctxErr := ctx.Err()
	next, ok := m.take(Call{URL: url, Options: opts.Clone()}, ctxErr == nil)
	if ctxErr != nil {
		return nil, ctxErr
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s %s", ErrUnscripted, opts.MethodOrDefault(), url)
	}
	if next.err != nil {
		return nil, next.err
	}

	res := fetch.NewResponse(next.res.status(), next.res.Header.Clone(), next.res.encode)
	res.OK = next.res.OK
	res.URL = url
	return res, nil
}

// take appends c to the ledger and, when consume is set, pops the next outcome.
func (m *Mock) take(c Call, consume bool) (outcome, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, c)
	if !consume {
		return outcome{}, false
	}
	if len(m.queue) == 0 {
		if m.fallback != nil {
			return outcome{res: m.fallback}, true
		}
		return outcome{}, false
	}

	next := m.queue[0]
	m.queue[0] = outcome{}
	m.queue = m.queue[1:]
	return next, true
}

// Calls returns a copy of the ledger in invocation order.
func (m *Mock) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

// CallCount returns the number of recorded invocations.
func (m *Mock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// LastCall returns the most recent invocation.
func (m *Mock) LastCall() (Call, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return Call{}, false
	}
	return m.calls[len(m.calls)-1], true
}

// CalledWith reports whether any recorded invocation used exactly url and opts.
func (m *Mock) CalledWith(url string, opts *fetch.Options) bool {
	for _, c := range m.Calls() {
		if c.Matches(url, opts) {
			return true
		}
	}
	return false
}

// Pending returns the number of scripted outcomes not yet consumed.
func (m *Mock) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

// ExpectationsWereMet returns ErrPending when scripted outcomes remain.
func (m *Mock) ExpectationsWereMet() error {
	if n := m.Pending(); n > 0 {
		return fmt.Errorf("%w: %d left", ErrPending, n)
	}
	return nil
}

// Reset clears every scripted outcome and the ledger. The default response is kept.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = nil
	m.calls = nil
}

// Matches reports whether c was made with exactly url and opts. A nil opts
// only matches an invocation made without options.
func (c Call) Matches(url string, opts *fetch.Options) bool {
	if c.URL != url {
		return false
	}
	if c.Options == nil || opts == nil {
		return c.Options == nil && opts == nil
	}
	return c.Options.Method == opts.Method &&
		bytes.Equal(c.Options.Body, opts.Body) &&
		sameHeader(c.Options.Header, opts.Header)
}

func sameHeader(a, b http.Header) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
	}
	return true
}

func (r *Response) status() int {
	switch {
	case r.Status != 0:
		return r.Status
	case r.OK:
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}

// encode runs the body producer and renders its value.
func (r *Response) encode() ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	switch v := r.Body().(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case json.RawMessage:
		return v, nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode scripted body: %w", err)
		}
		return b, nil
	}
}
