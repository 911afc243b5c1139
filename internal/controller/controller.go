// Package controller binds user actions to the normalize, fetch and render
// pipeline and owns the regions of one page.
package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"pokecard/internal/catalog"
	"pokecard/internal/config"
	"pokecard/internal/display"
	"pokecard/internal/metrics"
	"pokecard/internal/models"
	"pokecard/internal/render"
	"pokecard/internal/validation"
)

// TextRegion is a single-valued text slot on the page.
type TextRegion interface {
	SetText(string)
}

// CardRegion is the result slot; Replace(nil) empties it.
type CardRegion interface {
	Replace(*models.Card)
}

// Regions are the handles the controller writes to.
type Regions struct {
	Input  TextRegion
	Helper TextRegion
	Error  TextRegion
	Result CardRegion
}

// RegionsFor returns handles onto the regions of an in-memory page.
func RegionsFor(p *display.Page) Regions {
	return Regions{
		Input:  &p.Input,
		Helper: &p.Helper,
		Error:  &p.Error,
		Result: &p.Result,
	}
}

// Config contains the dependencies of a Controller.
type Config struct {
	Catalog  catalog.Client
	Regions  Regions
	Messages config.Messages
	// CatalogSize is the upper bound of the random pick (optional, defaults to 898).
	CatalogSize int
	// RandomID returns an integer in [1, n] (optional, uniform by default).
	RandomID func(n int) int
	// Logger for diagnostics (optional, defaults to slog.Default()).
	Logger *slog.Logger
}

// Validate checks required dependencies and fills in defaults.
func (cfg *Config) Validate() error {
	if cfg.Catalog == nil {
		return errors.New("controller: catalog client is required")
	}
	r := cfg.Regions
	if r.Input == nil || r.Helper == nil || r.Error == nil || r.Result == nil {
		return errors.New("controller: all four regions are required")
	}
	if cfg.Messages == (config.Messages{}) {
		cfg.Messages = config.DefaultMessages()
	}
	if cfg.CatalogSize == 0 {
		cfg.CatalogSize = config.DefaultCatalogSize
	}
	if cfg.CatalogSize < 0 {
		return fmt.Errorf("controller: invalid catalog size %d", cfg.CatalogSize)
	}
	if cfg.RandomID == nil {
		cfg.RandomID = func(n int) int { return rand.IntN(n) + 1 }
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return nil
}

// Controller handles the commands of one page. It is safe for concurrent
// use: overlapping lookups are allowed, and only the most recently issued
// one may write its result.
type Controller struct {
	catalog     catalog.Client
	regions     Regions
	messages    config.Messages
	catalogSize int
	randomID    func(int) int
	logger      *slog.Logger

	// seq is advanced by every command that supersedes in-flight lookups.
	seq atomic.Uint64
	// mu serializes region writes with the staleness check.
	mu sync.Mutex
}

// New creates a controller with the given configuration.
func New(cfg *Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		catalog:     cfg.Catalog,
		regions:     cfg.Regions,
		messages:    cfg.Messages,
		catalogSize: cfg.CatalogSize,
		randomID:    cfg.RandomID,
		logger:      cfg.Logger,
	}, nil
}

// Handle runs one command to completion and returns the lookup outcome,
// or "" for commands that do not look anything up.
func (c *Controller) Handle(ctx context.Context, cmd Command) string {
	switch cmd := cmd.(type) {
	case Submit:
		return c.lookup(ctx, c.seq.Add(1), cmd.Text)
	case KeyUp:
		c.keyUp(cmd.Text)
	case RandomPick:
		return c.randomPick(ctx)
	case Clear:
		c.clear()
	}
	return ""
}

func (c *Controller) keyUp(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.regions.Helper.SetText(c.messages.HelperFor(strings.TrimSpace(text)))
}

func (c *Controller) randomPick(ctx context.Context) string {
	seq := c.seq.Add(1)
	id := strconv.Itoa(c.randomID(c.catalogSize))

	c.mu.Lock()
	c.regions.Error.SetText("")
	c.regions.Input.SetText(id)
	c.mu.Unlock()

	return c.lookup(ctx, seq, id)
}

func (c *Controller) clear() {
	c.seq.Add(1)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.regions.Error.SetText("")
	c.regions.Result.Replace(nil)
	c.regions.Input.SetText("")
	c.regions.Helper.SetText(c.messages.HelperPrompt)
}

// lookup validates raw input, fetches it and settles the regions if seq is
// still the latest issued command.
func (c *Controller) lookup(ctx context.Context, seq uint64, raw string) string {
	query, err := validation.NormalizeQuery(raw)
	if err != nil {
		return c.settle(seq, models.OutcomeRejected, nil, c.messages.EmptyQuery)
	}

	c.mu.Lock()
	if c.seq.Load() == seq {
		c.regions.Error.SetText("")
	}
	c.mu.Unlock()

	creature, err := c.catalog.Fetch(ctx, query)
	if err != nil {
		outcome, msg := c.classify(err)
		if outcome == models.OutcomeNetworkError {
			c.logger.Warn("catalog request failed", "query", query, "error", err)
		}
		return c.settle(seq, outcome, nil, msg)
	}

	return c.settle(seq, models.OutcomeRendered, render.Card(creature), "")
}

// settle applies a lookup result. An error message always comes with an
// empty result region so a stale card never sits beside a new error.
func (c *Controller) settle(seq uint64, outcome string, card *models.Card, errMsg string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.seq.Load() != seq {
		c.logger.Debug("discarding superseded lookup", "outcome", outcome)
		metrics.RecordLookup(models.OutcomeStale)
		return models.OutcomeStale
	}

	c.regions.Error.SetText(errMsg)
	c.regions.Result.Replace(card)
	metrics.RecordLookup(outcome)
	return outcome
}

func (c *Controller) classify(err error) (string, string) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return models.OutcomeNotFound, c.messages.NotFound
	case errors.Is(err, catalog.ErrUpstream):
		return models.OutcomeFetchFailed, c.messages.FetchFailed
	default:
		return models.OutcomeNetworkError, c.messages.NetworkError
	}
}
