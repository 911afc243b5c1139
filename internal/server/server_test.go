package server

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v3"

	"pokecard/internal/config"
	"pokecard/internal/pages"
	"pokecard/internal/testutil"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:          "test",
		ServerAddr:   ":0",
		BaseURL:      "http://localhost:3000",
		CatalogSize:  config.DefaultCatalogSize,
		RateLimitMax: 100,
		Messages:     config.DefaultMessages(),
		SiteTitle:    "Pokécard",
	}
}

func newTestServer(t *testing.T, cfg *config.Config, storage fiber.Storage) (*Server, *testutil.Catalog) {
	t.Helper()

	fc := testutil.NewCatalog(t)
	client := fc.Client(t)
	s := New(cfg, storage)
	s.RegisterRoutes(pages.NewRegistry(client, cfg, slog.New(slog.DiscardHandler)), client)
	return s, fc
}

func get(t *testing.T, s *Server, path string) (int, string) {
	t.Helper()

	req, _ := http.NewRequest(http.MethodGet, path, nil)
	resp, err := s.App.Test(req, fiber.TestConfig{Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestRoutes(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = true
	s, fc := newTestServer(t, cfg, nil)
	fc.Set("pikachu", http.StatusOK, testutil.PikachuJSON)

	tests := []struct {
		name     string
		path     string
		wantCode int
		contains string
	}{
		{"index", "/", http.StatusOK, `id="pokemon-form"`},
		{"liveness", "/healthz", http.StatusOK, `"ok"`},
		{"readiness", "/readyz", http.StatusOK, `"ok"`},
		{"stylesheet", "/static/app.css", http.StatusOK, ".pokemon-card"},
		{"api", "/api/creatures/Pikachu", http.StatusOK, `"name":"pikachu"`},
		{"api not found", "/api/creatures/missingno", http.StatusNotFound, `"error"`},
		{"metrics", "/metrics", http.StatusOK, "go_goroutines"},
		{"unknown route", "/nope", http.StatusNotFound, "Back to search"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := get(t, s, tt.path)
			if code != tt.wantCode {
				t.Fatalf("GET %s: expected %d, got %d: %s", tt.path, tt.wantCode, code, body)
			}
			if !strings.Contains(body, tt.contains) {
				t.Errorf("GET %s: body does not contain %q", tt.path, tt.contains)
			}
		})
	}
}

func TestMetricsDisabled(t *testing.T) {
	s, _ := newTestServer(t, testConfig(), nil)

	if code, _ := get(t, s, "/metrics"); code != http.StatusNotFound {
		t.Errorf("expected /metrics to be absent, got %d", code)
	}
}

// TestRateLimitSharedStorage verifies that limiter counters land in Redis
// and that the budget is enforced across requests.
func TestRateLimitSharedStorage(t *testing.T) {
	mr := miniredis.RunT(t)

	storage, err := NewLimiterStorage("redis://" + mr.Addr())
	if err != nil {
		t.Fatalf("failed to create limiter storage: %v", err)
	}

	cfg := testConfig()
	cfg.RateLimitMax = 2
	s, _ := newTestServer(t, cfg, storage)

	for i := 1; i <= 2; i++ {
		if code, body := get(t, s, "/api/creatures/missingno"); code != http.StatusNotFound {
			t.Fatalf("request %d: expected 404, got %d: %s", i, code, body)
		}
	}

	code, body := get(t, s, "/api/creatures/missingno")
	if code != http.StatusTooManyRequests {
		t.Fatalf("request 3: expected 429, got %d: %s", code, body)
	}
	if !strings.Contains(body, "Rate limit exceeded") {
		t.Errorf("unexpected rate limit body: %s", body)
	}

	if len(mr.Keys()) == 0 {
		t.Error("expected limiter keys in redis")
	}

	// Probes are never limited.
	if code, _ := get(t, s, "/healthz"); code != http.StatusOK {
		t.Errorf("healthz: expected 200, got %d", code)
	}
}

func TestReadinessFollowsStorage(t *testing.T) {
	mr := miniredis.RunT(t)

	storage, err := NewLimiterStorage("redis://" + mr.Addr())
	if err != nil {
		t.Fatalf("failed to create limiter storage: %v", err)
	}
	s, _ := newTestServer(t, testConfig(), storage)

	if code, body := get(t, s, "/readyz"); code != http.StatusOK {
		t.Fatalf("expected 200 while redis is up, got %d: %s", code, body)
	}

	mr.Close()

	if code, body := get(t, s, "/readyz"); code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 after redis went away, got %d: %s", code, body)
	}
}

func TestNewLimiterStorage(t *testing.T) {
	storage, err := NewLimiterStorage("")
	if err != nil || storage != nil {
		t.Errorf("empty url: got storage=%v err=%v, want nil, nil", storage, err)
	}

	if _, err := NewLimiterStorage("redis://127.0.0.1:1"); err == nil {
		t.Error("expected an error for an unreachable redis")
	}
}

func TestNewCopiesRequestValues(t *testing.T) {
	s := New(testConfig(), nil)

	if !s.App.Config().Immutable {
		t.Error("request values must be copied since page state outlives the request")
	}
}
