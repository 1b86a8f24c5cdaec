package cmd

import (
	"context"
	"fmt"

	"github.com/folio-dev/folio/internal/config"
	"github.com/folio-dev/folio/internal/content"
	"github.com/folio-dev/folio/internal/repos"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `folio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadLibrary gathers the built-in personas plus any persona_files, with
// the configured persona first so it becomes the default.
func loadLibrary(cfg *config.Config) (*content.Library, error) {
	byslug := make(map[string]*content.Profile)
	var order []string
	add := func(p *content.Profile) {
		if _, ok := byslug[p.Slug]; !ok {
			order = append(order, p.Slug)
		}
		byslug[p.Slug] = p
	}

	for _, slug := range content.Builtins() {
		p, err := content.Builtin(slug)
		if err != nil {
			return nil, err
		}
		add(p)
	}
	for _, path := range cfg.PersonaFiles {
		p, err := content.LoadFile(path)
		if err != nil {
			return nil, err
		}
		add(p)
	}

	def, ok := byslug[cfg.Persona]
	if !ok {
		return nil, fmt.Errorf("persona %q not found", cfg.Persona)
	}
	profiles := []*content.Profile{def}
	for _, slug := range order {
		if slug != cfg.Persona {
			profiles = append(profiles, byslug[slug])
		}
	}
	return content.NewLibrary(profiles...)
}

// newCatalogs returns the function that picks each persona's project source.
// Static mode, or a persona without a GitHub user, serves the curated list.
func newCatalogs(cfg *config.Config) func(p *content.Profile) repos.Catalog {
	client := repos.NewClient(repos.ClientConfig{
		BaseURL:    cfg.GitHub.APIBase,
		Token:      cfg.GitHub.Token,
		Revalidate: cfg.GitHub.Revalidate,
		Timeout:    cfg.GitHub.Timeout,
	}, logger)

	return func(p *content.Profile) repos.Catalog {
		user := cfg.GitHub.User
		if user == "" {
			user = p.GitHubUser
		}
		if cfg.GitHub.Mode == config.ProjectsStatic || user == "" {
			return p.StaticCatalog()
		}
		return repos.NewRemoteCatalog(client, user, p.Normalizer())
	}
}

// staticInline renders curated projects into the page; remote lists are
// left for the live session.
func staticInline(cfg *config.Config) func(ctx context.Context, p *content.Profile) []repos.DisplayItem {
	if cfg.GitHub.Mode != config.ProjectsStatic {
		return nil
	}
	return func(ctx context.Context, p *content.Profile) []repos.DisplayItem {
		items, err := p.StaticCatalog().Projects(ctx)
		if err != nil {
			return []repos.DisplayItem{}
		}
		return items
	}
}

// pickPersona returns the named persona, or the default when name is empty.
func pickPersona(lib *content.Library, name string) (*content.Profile, error) {
	if name == "" {
		return lib.Default(), nil
	}
	p, ok := lib.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown persona %q (available: %v)", name, lib.Slugs())
	}
	return p, nil
}
