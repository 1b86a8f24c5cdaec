package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides. A double underscore
// descends into a nested key: FOLIO_GITHUB__MODE sets github.mode.
const EnvPrefix = "FOLIO_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FOLIO_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: FOLIO_PORT -> port, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// The conventional token variable is honoured when no explicit one is set.
	if cfg.GitHub.Token == "" {
		cfg.GitHub.Token = os.Getenv("GITHUB_TOKEN")
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path. The GitHub
// token is never written.
func (c *Config) Save(path string) error {
	out := *c
	out.GitHub.Token = ""
	data, err := yamlv3.Marshal(&out)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validModes is the set of recognized projects modes.
var validModes = map[ProjectsMode]bool{
	ProjectsRemote: true,
	ProjectsStatic: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Persona) == "" {
		return fmt.Errorf("persona is required")
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	if c.PreloadMS < 0 {
		return fmt.Errorf("preload_ms must be non-negative")
	}

	if !validModes[c.GitHub.Mode] {
		return fmt.Errorf("invalid github.mode %q: must be one of remote, static", c.GitHub.Mode)
	}

	if c.GitHub.Mode == ProjectsRemote {
		if err := checkHTTPURL("github.api_base", c.GitHub.APIBase); err != nil {
			return err
		}
	}

	if c.GitHub.Revalidate < 0 {
		return fmt.Errorf("github.revalidate must be non-negative")
	}

	if c.GitHub.Timeout < 0 {
		return fmt.Errorf("github.timeout must be non-negative")
	}

	if c.Contact.WebhookURL != "" {
		if err := checkHTTPURL("contact.webhook_url", c.Contact.WebhookURL); err != nil {
			return err
		}
	}

	if c.Export.OutputDir == "" {
		return fmt.Errorf("export.output_dir is required")
	}

	return nil
}

func checkHTTPURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid %s %q: must be an http(s) URL", key, raw)
	}
	return nil
}
