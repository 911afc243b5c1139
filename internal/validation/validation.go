package validation

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

// ErrEmptyQuery is returned when the input is empty after normalization.
var ErrEmptyQuery = errors.New("empty query")

// NormalizeQuery trims and lowercases raw input into a lookup query.
// Any non-empty result is accepted; the catalog decides whether it exists.
func NormalizeQuery(raw string) (string, error) {
	query := strings.ToLower(strings.TrimSpace(raw))
	if query == "" {
		return "", ErrEmptyQuery
	}
	return query, nil
}

// IsNumericID reports whether a normalized query is a positive integer identifier.
func IsNumericID(query string) bool {
	n, err := strconv.Atoi(query)
	return err == nil && n > 0
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}
