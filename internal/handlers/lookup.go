package handlers

import (
	"html"
	"strings"

	"github.com/gofiber/fiber/v3"

	"pokecard/internal/config"
	"pokecard/internal/controller"
	"pokecard/internal/pages"
)

// LookupHandler serves the lookup page and turns its form actions into
// controller commands.
type LookupHandler struct {
	pages *pages.Registry
	cfg   *config.Config
}

// NewLookupHandler creates a new lookup handler.
func NewLookupHandler(registry *pages.Registry, cfg *config.Config) *LookupHandler {
	return &LookupHandler{pages: registry, cfg: cfg}
}

// Index renders a fresh lookup page.
func (h *LookupHandler) Index(c fiber.Ctx) error {
	p, err := h.pages.Create()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not open a lookup page")
	}
	return c.Render("index", h.pageData(p))
}

// Submit looks up the submitted text.
func (h *LookupHandler) Submit(c fiber.Ctx) error {
	p, ok := c.Locals("page").(*pages.Page)
	if !ok {
		return htmxError(c, "This page has expired. Reload to continue.")
	}

	// FormValue aliases the request buffer, which fasthttp reuses once the
	// request ends; the page keeps its own copy.
	text := strings.Clone(c.FormValue("q"))
	// The field keeps whatever the user typed, as it would in the browser.
	p.Display.Input.SetText(text)
	p.Controller.Handle(c.Context(), controller.Submit{Text: text})

	return h.renderLookup(c, p)
}

// Random looks up a random catalog entry.
func (h *LookupHandler) Random(c fiber.Ctx) error {
	p, ok := c.Locals("page").(*pages.Page)
	if !ok {
		return htmxError(c, "This page has expired. Reload to continue.")
	}

	p.Controller.Handle(c.Context(), controller.RandomPick{})

	return h.renderLookup(c, p)
}

// Clear resets the page.
func (h *LookupHandler) Clear(c fiber.Ctx) error {
	p, ok := c.Locals("page").(*pages.Page)
	if !ok {
		return htmxError(c, "This page has expired. Reload to continue.")
	}

	p.Controller.Handle(c.Context(), controller.Clear{})

	return h.renderLookup(c, p)
}

// Helper returns the helper text for the current input value (keyup).
func (h *LookupHandler) Helper(c fiber.Ctx) error {
	text := strings.Clone(c.FormValue("q"))

	p, ok := c.Locals("page").(*pages.Page)
	if !ok {
		// Unknown page: answer statelessly rather than allocating one per keystroke.
		return c.SendString(html.EscapeString(h.cfg.Messages.HelperFor(strings.TrimSpace(text))))
	}

	p.Display.Input.SetText(text)
	p.Controller.Handle(c.Context(), controller.KeyUp{Text: text})

	return c.Render("partials/helper", h.pageData(p), "")
}

// renderLookup returns the lookup widget for HTMX swaps, or the whole page
// for plain form posts.
func (h *LookupHandler) renderLookup(c fiber.Ctx, p *pages.Page) error {
	if isHTMX(c) {
		return c.Render("partials/lookup", h.pageData(p), "")
	}
	return c.Render("index", h.pageData(p))
}

func (h *LookupHandler) pageData(p *pages.Page) fiber.Map {
	return WithSite(fiber.Map{
		"PageID": p.ID.String(),
		"State":  p.Display.Snapshot(),
	}, h.cfg)
}
