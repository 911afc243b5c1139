// Package testutil provides test utilities and helpers.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"pokecard/internal/catalog"
)

// PikachuJSON is a trimmed catalog document for "pikachu" / 25.
const PikachuJSON = `{
	"id": 25,
	"name": "pikachu",
	"height": 4,
	"weight": 60,
	"types": [{"slot": 1, "type": {"name": "electric"}}],
	"abilities": [
		{"slot": 1, "ability": {"name": "static"}},
		{"slot": 3, "ability": {"name": "lightning-rod"}}
	],
	"sprites": {"front_default": "URL"}
}`

// Response is a canned catalog answer.
type Response struct {
	Status int
	Body   string
}

// Catalog is a fake creature catalog served over HTTP. Queries without a
// canned response get 404.
type Catalog struct {
	Server *httptest.Server

	mu        sync.Mutex
	responses map[string]Response
	fallback  *Response
	requests  []string
}

// NewCatalog starts a fake catalog that is closed when the test ends.
func NewCatalog(t *testing.T) *Catalog {
	t.Helper()

	fc := &Catalog{responses: make(map[string]Response)}
	fc.Server = httptest.NewServer(http.HandlerFunc(fc.serve))
	t.Cleanup(fc.Server.Close)
	return fc
}

// Set registers the response for query.
func (fc *Catalog) Set(query string, status int, body string) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.responses[query] = Response{Status: status, Body: body}
}

// SetFallback answers every unregistered query with the given response.
func (fc *Catalog) SetFallback(status int, body string) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.fallback = &Response{Status: status, Body: body}
}

// Requests returns the queries received so far, in order.
func (fc *Catalog) Requests() []string {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return append([]string(nil), fc.requests...)
}

// Client returns a catalog client pointed at the fake.
func (fc *Catalog) Client(t *testing.T) catalog.Client {
	t.Helper()

	client, err := catalog.New(&catalog.Config{BaseURL: fc.Server.URL + "/api/v2/pokemon/"})
	if err != nil {
		t.Fatalf("failed to create catalog client: %v", err)
	}
	return client
}

func (fc *Catalog) serve(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimPrefix(r.URL.Path, "/api/v2/pokemon/")

	fc.mu.Lock()
	fc.requests = append(fc.requests, query)
	resp, ok := fc.responses[query]
	if !ok && fc.fallback != nil {
		resp, ok = *fc.fallback, true
	}
	fc.mu.Unlock()

	if !ok {
		resp = Response{Status: http.StatusNotFound, Body: "Not Found"}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	_, _ = w.Write([]byte(resp.Body))
}

// ClosedCatalog returns a client whose every request fails at the transport.
func ClosedCatalog(t *testing.T) catalog.Client {
	t.Helper()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := catalog.New(&catalog.Config{BaseURL: url + "/"})
	if err != nil {
		t.Fatalf("failed to create catalog client: %v", err)
	}
	return client
}
