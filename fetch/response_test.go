package fetch

import (
	"errors"
	"net/http"
	"testing"
)

func TestNewResponse(t *testing.T) {
	tt := []struct {
		status   int
		wantOK   bool
		wantText string
	}{
		{http.StatusOK, true, "OK"},
		{http.StatusCreated, true, "Created"},
		{299, true, ""},
		{http.StatusMultipleChoices, false, "Multiple Choices"},
		{http.StatusBadRequest, false, "Bad Request"},
		{http.StatusInternalServerError, false, "Internal Server Error"},
		{0, false, ""},
	}

	for _, tc := range tt {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			r := NewResponse(tc.status, nil, nil)
			if r.OK != tc.wantOK {
				t.Errorf("status %d: want ok=%v, got %v", tc.status, tc.wantOK, r.OK)
			}
			if r.StatusText != tc.wantText {
				t.Errorf("status %d: want text %q, got %q", tc.status, tc.wantText, r.StatusText)
			}
			if r.Header == nil {
				t.Error("expected non-nil header")
			}
		})
	}
}

func TestResponseBody(t *testing.T) {
	t.Run("body is produced lazily", func(t *testing.T) {
		calls := 0
		r := NewResponse(http.StatusOK, nil, func() ([]byte, error) {
			calls++
			return []byte(`{"id":2,"title":"Samsung Galaxy"}`), nil
		})
		if calls != 0 {
			t.Fatalf("body produced before read")
		}

		var p struct {
			ID    int    `json:"id"`
			Title string `json:"title"`
		}
		if err := r.JSON(&p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != 2 || p.Title != "Samsung Galaxy" {
			t.Errorf("unexpected product %+v", p)
		}
		if calls != 1 {
			t.Errorf("expected producer to run once, ran %d times", calls)
		}
	})

	t.Run("body is consumed exactly once", func(t *testing.T) {
		r := NewResponse(http.StatusOK, nil, func() ([]byte, error) { return []byte("hello"), nil })
		if r.BodyUsed() {
			t.Fatal("fresh response reports body used")
		}
		s, err := r.Text()
		if err != nil || s != "hello" {
			t.Fatalf("want hello, got %q (%v)", s, err)
		}
		if !r.BodyUsed() {
			t.Fatal("expected body to be marked used")
		}
		if _, err := r.Bytes(); !errors.Is(err, ErrBodyUsed) {
			t.Fatalf("expected ErrBodyUsed, got %v", err)
		}
	})

	t.Run("producer error surfaces", func(t *testing.T) {
		boom := errors.New("boom")
		r := NewResponse(http.StatusOK, nil, func() ([]byte, error) { return nil, boom })
		var v any
		if err := r.JSON(&v); !errors.Is(err, boom) {
			t.Fatalf("expected producer error, got %v", err)
		}
	})

	t.Run("nil body", func(t *testing.T) {
		r := NewResponse(http.StatusNoContent, nil, nil)
		b, err := r.Bytes()
		if err != nil || b != nil {
			t.Fatalf("expected empty body, got %q (%v)", b, err)
		}
	})

	t.Run("json on empty body", func(t *testing.T) {
		r := NewResponse(http.StatusNoContent, nil, nil)
		var v any
		if err := r.JSON(&v); !errors.Is(err, ErrEmptyBody) {
			t.Fatalf("expected ErrEmptyBody, got %v", err)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		r := NewResponse(http.StatusOK, nil, func() ([]byte, error) { return []byte("not json"), nil })
		var v any
		if err := r.JSON(&v); err == nil {
			t.Fatal("expected decode error")
		}
	})
}
