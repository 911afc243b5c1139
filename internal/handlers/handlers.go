package handlers

import (
	"html"

	"github.com/gofiber/fiber/v3"

	"pokecard/internal/config"
)

// htmxError returns an error message as HTML that HTMX will display.
// Uses 200 status so HTMX processes the swap (HTMX ignores non-2xx by default).
func htmxError(c fiber.Ctx, message string) error {
	return c.SendString(
		`<p id="error-message" class="error" role="alert">` + html.EscapeString(message) + `</p>`,
	)
}

// isHTMX reports whether the request was issued by HTMX.
func isHTMX(c fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}

// WithSite adds the site title, tagline and footer the layout renders.
func WithSite(data fiber.Map, cfg *config.Config) fiber.Map {
	data["SiteTitle"] = cfg.SiteTitle
	data["SiteTagline"] = cfg.SiteTagline
	data["SiteFooter"] = cfg.SiteFooter
	return data
}
