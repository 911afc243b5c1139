package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pikachuJSON = `{
	"id": 25,
	"name": "pikachu",
	"height": 4,
	"weight": 60,
	"types": [{"slot": 1, "type": {"name": "electric", "url": "https://pokeapi.co/api/v2/type/13/"}}],
	"abilities": [
		{"ability": {"name": "static", "url": "https://pokeapi.co/api/v2/ability/9/"}, "is_hidden": false, "slot": 1},
		{"ability": {"name": "lightning-rod", "url": "https://pokeapi.co/api/v2/ability/31/"}, "is_hidden": true, "slot": 3}
	],
	"sprites": {"front_default": "URL", "back_default": null}
}`

// newTestClient points a client at a stub catalog and returns a func
// reporting the escaped request paths it received.
func newTestClient(t *testing.T, handler http.HandlerFunc) (Client, func() []string) {
	t.Helper()
	var (
		mu    sync.Mutex
		paths []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.EscapedPath())
		mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	c, err := New(&Config{BaseURL: srv.URL + "/api/v2/pokemon"})
	require.NoError(t, err)
	return c, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), paths...)
	}
}

func TestFetch_Success(t *testing.T) {
	c, paths := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "pokecard/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(pikachuJSON))
	})

	creature, err := c.Fetch(context.Background(), "pikachu")
	require.NoError(t, err)

	assert.Equal(t, []string{"/api/v2/pokemon/pikachu"}, paths())
	assert.Equal(t, 25, creature.ID)
	assert.Equal(t, "pikachu", creature.Name)
	assert.Equal(t, 4, creature.Height)
	assert.Equal(t, 60, creature.Weight)
	assert.Equal(t, []string{"electric"}, creature.Types)
	assert.Equal(t, []string{"static", "lightning-rod"}, creature.Abilities)
	assert.Equal(t, "URL", creature.SpriteURL)
}

func TestFetch_NullSprite(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 10001, "name": "deoxys-attack", "height": 17, "weight": 608,
			"types": [], "abilities": [], "sprites": {"front_default": null}}`))
	})

	creature, err := c.Fetch(context.Background(), "10001")
	require.NoError(t, err)
	assert.Empty(t, creature.SpriteURL)
	assert.Empty(t, creature.Types)
}

func TestFetch_EscapesQuery(t *testing.T) {
	c, paths := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.Fetch(context.Background(), "mr mime/../x")
	require.Error(t, err)
	assert.Equal(t, []string{"/api/v2/pokemon/mr%20mime%2F..%2Fx"}, paths())
}

func TestFetch_StatusClassification(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"not found", http.StatusNotFound, ErrNotFound},
		{"bad request", http.StatusBadRequest, ErrNotFound},
		{"too many requests", http.StatusTooManyRequests, ErrNotFound},
		{"client error upper bound", 499, ErrNotFound},
		{"internal server error", http.StatusInternalServerError, ErrUpstream},
		{"bad gateway", http.StatusBadGateway, ErrUpstream},
		{"not modified", http.StatusNotModified, ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			creature, err := c.Fetch(context.Background(), "missingno")
			assert.Nil(t, creature)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFetch_UnparsableBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	})

	_, err := c.Fetch(context.Background(), "pikachu")
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestFetch_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := New(&Config{BaseURL: base + "/"})
	require.NoError(t, err)

	_, err = c.Fetch(context.Background(), "pikachu")
	assert.ErrorIs(t, err, ErrNetwork)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestFetch_CanceledContext(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(pikachuJSON))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Fetch(ctx, "pikachu")
	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.NotNil(t, cfg.HTTPClient)

	cfg = &Config{BaseURL: "http://localhost:8080/pokemon"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://localhost:8080/pokemon/", cfg.BaseURL)

	cfg = &Config{BaseURL: "ftp://example.com/"}
	assert.Error(t, cfg.Validate())
}
