package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Messages is the user-visible status text shown in the helper and error regions.
type Messages struct {
	HelperPrompt string `yaml:"helper_prompt"`
	// HelperQuery is a format string receiving the trimmed input once.
	HelperQuery  string `yaml:"helper_query"`
	EmptyQuery   string `yaml:"empty_query"`
	NotFound     string `yaml:"not_found"`
	FetchFailed  string `yaml:"fetch_failed"`
	NetworkError string `yaml:"network_error"`
}

// DefaultMessages returns the built-in status text.
func DefaultMessages() Messages {
	return Messages{
		HelperPrompt: "Start typing a Pokémon name or ID...",
		HelperQuery:  "Press Enter or click Search to find %q.",
		EmptyQuery:   "Please enter a Pokémon name or ID.",
		NotFound:     "Pokémon not found. Try another name or ID.",
		FetchFailed:  "Failed to fetch data from the API.",
		NetworkError: "Network error. Please check your connection and try again.",
	}
}

// HelperFor returns the helper text for the current trimmed input value.
func (m Messages) HelperFor(trimmed string) string {
	if trimmed == "" {
		return m.HelperPrompt
	}
	return fmt.Sprintf(m.HelperQuery, trimmed)
}

// YAMLConfig represents the structure of the config.yaml file.
type YAMLConfig struct {
	Messages Messages `yaml:"messages"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	return loadYAMLConfigFile(getEnv("CONFIG_FILE", "config.yaml"))
}

func loadYAMLConfigFile(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if q := cfg.Messages.HelperQuery; q != "" && !validHelperQuery(q) {
		return nil, fmt.Errorf("%s: messages.helper_query must use the query exactly once, as %%s or %%q", path)
	}

	return &cfg, nil
}

// validHelperQuery reports whether format renders the query exactly once
// without formatting errors. Escaped %% signs are allowed.
func validHelperQuery(format string) bool {
	const marker = "pokecard-query"
	out := fmt.Sprintf(format, marker)
	return !strings.Contains(out, "%!") && strings.Count(out, marker) == 1
}

// Apply overlays non-empty messages from the YAML file onto cfg.
func (y *YAMLConfig) Apply(cfg *Config) {
	if y == nil {
		return
	}
	m := y.Messages
	overlay(&cfg.Messages.HelperPrompt, m.HelperPrompt)
	overlay(&cfg.Messages.HelperQuery, m.HelperQuery)
	overlay(&cfg.Messages.EmptyQuery, m.EmptyQuery)
	overlay(&cfg.Messages.NotFound, m.NotFound)
	overlay(&cfg.Messages.FetchFailed, m.FetchFailed)
	overlay(&cfg.Messages.NetworkError, m.NetworkError)
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
