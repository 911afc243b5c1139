// Package pages tracks the lookup pages currently open in browsers.
// Each page owns its display regions and controller; nothing outlives the
// process and a reload always starts a fresh page.
package pages

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"pokecard/internal/catalog"
	"pokecard/internal/config"
	"pokecard/internal/controller"
	"pokecard/internal/display"
)

// ErrPageNotFound is returned for unknown or evicted page ids.
var ErrPageNotFound = errors.New("page not found")

// Page is one open lookup page.
type Page struct {
	ID         uuid.UUID
	Display    *display.Page
	Controller *controller.Controller

	lastSeen time.Time
}

// Registry holds open pages keyed by id.
type Registry struct {
	catalog catalog.Client
	cfg     *config.Config
	logger  *slog.Logger
	now     func() time.Time

	mu    sync.Mutex
	pages map[uuid.UUID]*Page
}

// NewRegistry creates an empty registry whose pages share one catalog client.
func NewRegistry(client catalog.Client, cfg *config.Config, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		catalog: client,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
		pages:   make(map[uuid.UUID]*Page),
	}
}

// Create allocates a page with its regions in the cleared state.
func (r *Registry) Create() (*Page, error) {
	d := &display.Page{}
	id := uuid.New()
	ctrl, err := controller.New(&controller.Config{
		Catalog:     r.catalog,
		Regions:     controller.RegionsFor(d),
		Messages:    r.cfg.Messages,
		CatalogSize: r.cfg.CatalogSize,
		Logger:      r.logger.With("page", id.String()),
	})
	if err != nil {
		return nil, err
	}
	ctrl.Handle(context.Background(), controller.Clear{})

	p := &Page{ID: id, Display: d, Controller: ctrl}

	r.mu.Lock()
	p.lastSeen = r.now()
	r.pages[p.ID] = p
	r.mu.Unlock()
	return p, nil
}

// Get returns the page with the given id and marks it as seen.
func (r *Registry) Get(id uuid.UUID) (*Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pages[id]
	if !ok {
		return nil, ErrPageNotFound
	}
	p.lastSeen = r.now()
	return p, nil
}

// Evict removes pages not seen within maxIdle and returns how many were removed.
func (r *Registry) Evict(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-maxIdle)
	removed := 0
	for id, p := range r.pages {
		if p.lastSeen.Before(cutoff) {
			delete(r.pages, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of open pages.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pages)
}
