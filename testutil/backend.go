// Package testutil provides shared test helpers.
// Backend is an in-process fake of the remote tour guides API, so apiclient
// and service tests run end to end over real HTTP without the network.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Call records one request the fake backend received.
type Call struct {
	Method string
	Path   string
	Body   []byte
}

// DecodeBody unmarshals the recorded request body into v.
func (c Call) DecodeBody(t *testing.T, v any) {
	t.Helper()
	if err := json.Unmarshal(c.Body, v); err != nil {
		t.Fatalf("testutil.Call.DecodeBody: %v (body %q)", err, c.Body)
	}
}

// GuideFixture seeds one guide and the route ids it owns.
// When RoutesStatus is non-zero, GET /GuidesRW/{id}/routes answers with that
// status instead of the route list.
type GuideFixture struct {
	ID           int
	FirstName    string
	Routes       []int
	RoutesStatus int
}

// Backend is a fake of the remote API served by httptest.
// Register handlers before issuing requests; unregistered paths answer 404.
type Backend struct {
	t      *testing.T
	router chi.Router
	srv    *httptest.Server

	mu    sync.Mutex
	calls []Call
}

// NewBackend starts a fake backend that is shut down when the test finishes.
func NewBackend(t *testing.T) *Backend {
	t.Helper()
	b := &Backend{t: t, router: chi.NewRouter()}
	b.srv = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.srv.Close)
	return b
}

// URL is the base URL to hand to apiclient.New.
func (b *Backend) URL() string {
	return b.srv.URL
}

// Close stops the server early, e.g. to provoke transport errors.
func (b *Backend) Close() {
	b.srv.Close()
}

// Handle registers a handler for method and a chi path pattern.
func (b *Backend) Handle(method, pattern string, h http.HandlerFunc) {
	b.router.MethodFunc(method, pattern, h)
}

// Respond registers a fixed JSON response. A nil body writes no content.
func (b *Backend) Respond(method, pattern string, status int, body any) {
	b.Handle(method, pattern, func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, status, body)
	})
}

// SeedGuides registers GET /GuidesRW and GET /GuidesRW/{id}/routes for the
// given fixtures. Route payloads carry only routeId, like the real backend.
func (b *Backend) SeedGuides(fixtures ...GuideFixture) {
	guides := make([]map[string]any, len(fixtures))
	byID := make(map[int]GuideFixture, len(fixtures))
	for i, f := range fixtures {
		name := f.FirstName
		if name == "" {
			name = fmt.Sprintf("Guide%d", f.ID)
		}
		guides[i] = map[string]any{
			"id":            f.ID,
			"firstName":     name,
			"lastName":      "Test",
			"email":         fmt.Sprintf("guide%d@example.com", f.ID),
			"languages":     "English, Hebrew",
			"averageRating": 4,
		}
		byID[f.ID] = f
	}

	b.Respond(http.MethodGet, "/GuidesRW", http.StatusOK, guides)
	b.Handle(http.MethodGet, "/GuidesRW/{id}/routes", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		f, ok := byID[id]
		if err != nil || !ok {
			WriteJSON(w, http.StatusNotFound, nil)
			return
		}
		if f.RoutesStatus != 0 {
			WriteJSON(w, f.RoutesStatus, nil)
			return
		}
		routes := make([]map[string]any, len(f.Routes))
		for i, rid := range f.Routes {
			routes[i] = map[string]any{"routeId": rid, "description": fmt.Sprintf("Route %d", rid)}
		}
		WriteJSON(w, http.StatusOK, routes)
	})
}

// Calls returns a copy of every request received so far.
func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Call(nil), b.calls...)
}

// CallCount counts requests matching method and exact path.
func (b *Backend) CallCount(method, path string) int {
	n := 0
	for _, c := range b.Calls() {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

// LastCall returns the most recent request matching method and path.
func (b *Backend) LastCall(method, path string) (Call, bool) {
	calls := b.Calls()
	for i := len(calls) - 1; i >= 0; i-- {
		if calls[i].Method == method && calls[i].Path == path {
			return calls[i], true
		}
	}
	return Call{}, false
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		b.t.Errorf("testutil.Backend: read body: %v", err)
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	b.mu.Lock()
	b.calls = append(b.calls, Call{Method: r.Method, Path: r.URL.Path, Body: body})
	b.mu.Unlock()

	b.router.ServeHTTP(w, r)
}

// WriteJSON writes status and, when body is non-nil, its JSON encoding.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	if body == nil {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
