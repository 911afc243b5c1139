package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"pokecard/internal/pages"
)

// PageMiddleware resolves the lookup page a request belongs to.
type PageMiddleware struct {
	pages *pages.Registry
}

// NewPageMiddleware creates a new page middleware instance.
func NewPageMiddleware(registry *pages.Registry) *PageMiddleware {
	return &PageMiddleware{pages: registry}
}

// RequirePage loads the page named by the "page" form field, starting a
// fresh page when the id is missing or has been evicted.
func (m *PageMiddleware) RequirePage(c fiber.Ctx) error {
	p, err := m.lookup(c)
	if err != nil {
		p, err = m.pages.Create()
		if err != nil {
			return err
		}
	}

	c.Locals("page", p)
	return c.Next()
}

// OptionalPage loads the page if it is still open, but doesn't create one.
func (m *PageMiddleware) OptionalPage(c fiber.Ctx) error {
	if p, err := m.lookup(c); err == nil {
		c.Locals("page", p)
	}
	return c.Next()
}

func (m *PageMiddleware) lookup(c fiber.Ctx) (*pages.Page, error) {
	id, err := uuid.Parse(c.FormValue("page"))
	if err != nil {
		return nil, pages.ErrPageNotFound
	}
	return m.pages.Get(id)
}
