// Package catalog is the client for the public creature catalog API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pokecard/internal/metrics"
	"pokecard/internal/models"
	"pokecard/internal/validation"
)

// DefaultBaseURL is the public catalog endpoint; queries are appended to it.
const DefaultBaseURL = "https://pokeapi.co/api/v2/pokemon/"

// Client performs one catalog request per lookup.
type Client interface {
	// Fetch retrieves the creature for a normalized query. Failures wrap
	// ErrNotFound, ErrUpstream or ErrNetwork.
	Fetch(ctx context.Context, query string) (*models.Creature, error)
}

// Config contains configuration options for the catalog client.
type Config struct {
	// BaseURL of the catalog (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPClient used for requests (optional). The default has no timeout;
	// the caller's context bounds each request.
	HTTPClient *http.Client
	// UserAgent sent with each request (optional)
	UserAgent string
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if valid, msg := validation.ValidateURL(cfg.BaseURL); !valid {
		return fmt.Errorf("invalid catalog base URL %q: %s", cfg.BaseURL, msg)
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "pokecard/1.0"
	}
	return nil
}

type client struct {
	baseURL   string
	http      *http.Client
	userAgent string
}

// New creates a new catalog client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &client{
		baseURL:   cfg.BaseURL,
		http:      cfg.HTTPClient,
		userAgent: cfg.UserAgent,
	}, nil
}

func (c *client) Fetch(ctx context.Context, query string) (*models.Creature, error) {
	start := time.Now()
	creature, err := c.fetch(ctx, query)
	metrics.ObserveCatalogFetch(time.Since(start))
	return creature, err
}

func (c *client) fetch(ctx context.Context, query string) (*models.Creature, error) {
	target := c.baseURL + url.PathEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request for %q: %w", ErrNetwork, query, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: get %q: %w", ErrNetwork, query, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, fmt.Errorf("%w: %q returned status %d", ErrNotFound, query, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: %q returned status %d", ErrUpstream, query, resp.StatusCode)
	}

	var body creatureResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode %q: %w", ErrNetwork, query, err)
	}

	return body.toCreature(), nil
}
