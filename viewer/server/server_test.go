package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"prdesk.io/viewer/report"
	"prdesk.io/viewer/review"
)

func testBundle(t *testing.T, newText string) *report.Bundle {
	t.Helper()
	b, err := report.Build(review.FromFiles("a.txt", "hello\n", "a.txt", newText), report.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestHandler(t *testing.T) {
	h := &handler{}
	h.bundle.Store(testBundle(t, "world\n"))

	tests := []struct {
		name     string
		method   string
		path     string
		code     int
		mimeType string
		body     string
	}{
		{
			name:     "page",
			method:   http.MethodGet,
			path:     "/",
			code:     http.StatusOK,
			mimeType: "text/html; charset=utf-8",
			body:     "Changes to a.txt",
		},
		{
			name:     "feed",
			method:   http.MethodGet,
			path:     "/feed.atom",
			code:     http.StatusOK,
			mimeType: "application/atom+xml; charset=utf-8",
			body:     "<feed",
		},
		{
			name:     "rows",
			method:   http.MethodGet,
			path:     "/review.json",
			code:     http.StatusOK,
			mimeType: "application/json",
			body:     `"kind": "changed-old"`,
		},
		{
			name:     "head",
			method:   http.MethodHead,
			path:     "/",
			code:     http.StatusOK,
			mimeType: "text/html; charset=utf-8",
		},
		{
			name:     "not_found",
			method:   http.MethodGet,
			path:     "/index.html",
			code:     http.StatusNotFound,
			mimeType: "text/plain; charset=utf-8",
			body:     "not found",
		},
		{
			name:   "post",
			method: http.MethodPost,
			path:   "/",
			code:   http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			if rec.Code != tt.code {
				t.Errorf("status = %d, want %d", rec.Code, tt.code)
			}
			if got := rec.Header().Get("Content-Type"); tt.mimeType != "" && got != tt.mimeType {
				t.Errorf("Content-Type = %q, want %q", got, tt.mimeType)
			}
			body := rec.Body.String()
			if tt.body == "" && tt.method == http.MethodHead && body != "" {
				t.Errorf("HEAD response has a body: %q", body)
			}
			if !strings.Contains(body, tt.body) {
				t.Errorf("body does not contain %q:\n%s", tt.body, body)
			}
		})
	}
}

func TestServer(t *testing.T) {
	s, err := Run("localhost:0", testBundle(t, "world\n"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Shutdown(context.Background())

	get := func() string {
		t.Helper()
		resp, err := http.Get("http://" + s.Addr().String() + "/review.json")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		return string(b)
	}

	if got := get(); !strings.Contains(got, `"text": "world"`) {
		t.Errorf("initial bundle not served:\n%s", got)
	}

	s.ReplaceBundle(testBundle(t, "there\n"))
	if got := get(); !strings.Contains(got, `"text": "there"`) {
		t.Errorf("replaced bundle not served:\n%s", got)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatal(err)
	}
	select {
	case err := <-s.Error():
		t.Errorf("unexpected server error: %v", err)
	default:
	}
}
