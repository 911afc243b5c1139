package validation

import (
	"errors"
	"testing"
)

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{"plain name", "pikachu", "pikachu", nil},
		{"mixed case with padding", "  PikaChu ", "pikachu", nil},
		{"numeric id", "25", "25", nil},
		{"padded id", "\t 150\n", "150", nil},
		{"inner space kept", " Mr Mime ", "mr mime", nil},
		{"malformed id passes through", "-3", "-3", nil},
		{"unicode lowercased", "FLABÉBÉ", "flabébé", nil},
		{"empty string", "", "", ErrEmptyQuery},
		{"spaces only", "    ", "", ErrEmptyQuery},
		{"tabs and newlines", "\t\n\r ", "", ErrEmptyQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeQuery(tt.raw)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NormalizeQuery(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NormalizeQuery(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestIsNumericID(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"25", true},
		{"898", true},
		{"0", false},
		{"-1", false},
		{"pikachu", false},
		{"2.5", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := IsNumericID(tt.query); got != tt.want {
				t.Errorf("IsNumericID(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		valid   bool
		wantMsg string
	}{
		{"catalog endpoint", "https://pokeapi.co/api/v2/pokemon/", true, ""},
		{"local http", "http://localhost:8080/pokemon/", true, ""},
		{"uppercase scheme", "HTTPS://pokeapi.co/", true, ""},
		{"empty string", "", false, "URL is required"},
		{"javascript scheme", "javascript:alert(1)", false, "URL must use http:// or https:// scheme"},
		{"file scheme", "file:///etc/passwd", false, "URL must use http:// or https:// scheme"},
		{"no scheme", "pokeapi.co/api", false, "URL must use http:// or https:// scheme"},
		{"scheme only", "https://", false, "URL must have a valid host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateURL(tt.url)
			if valid != tt.valid {
				t.Errorf("ValidateURL(%q) valid = %v, want %v", tt.url, valid, tt.valid)
			}
			if !valid && msg != tt.wantMsg {
				t.Errorf("ValidateURL(%q) msg = %q, want %q", tt.url, msg, tt.wantMsg)
			}
		})
	}
}
