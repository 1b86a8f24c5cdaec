// Package content holds the persona content sets the portfolio renders.
package content

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/folio-dev/folio/internal/repos"
	"github.com/folio-dev/folio/internal/sections"
)

// Profile is one persona's complete page content.
type Profile struct {
	Slug       string `yaml:"slug" json:"slug"`
	Name       string `yaml:"name" json:"name"`
	Initial    string `yaml:"initial" json:"initial"`
	Title      string `yaml:"title" json:"title"`
	Summary    string `yaml:"summary" json:"summary"`
	Location   string `yaml:"location" json:"location"`
	Email      string `yaml:"email" json:"email"`
	GitHubUser string `yaml:"github_user" json:"github_user"`
	Available  bool   `yaml:"available" json:"available"`

	Hero       Hero                      `yaml:"hero" json:"hero"`
	About      string                    `yaml:"about" json:"about"` // markdown
	Stats      []Stat                    `yaml:"stats" json:"stats"`
	TechStack  []Tech                    `yaml:"tech_stack" json:"tech_stack"`
	Experience []Experience              `yaml:"experience" json:"experience"`
	Socials    []Link                    `yaml:"socials" json:"socials"`
	Dock       []Link                    `yaml:"dock" json:"dock"`
	Projects   []repos.DisplayItem       `yaml:"projects" json:"projects"`
	Featured   map[string]repos.Override `yaml:"featured" json:"featured"`
	Contact    ContactCopy               `yaml:"contact" json:"contact"`
	Nav        []sections.Section        `yaml:"nav,omitempty" json:"nav,omitempty"`
}

// Hero is the landing block.
type Hero struct {
	Greeting string   `yaml:"greeting" json:"greeting"`
	Roles    []string `yaml:"roles" json:"roles"`
	CodeFile string   `yaml:"code_file" json:"code_file"`
	Code     string   `yaml:"code" json:"code"` // markdown, usually one fenced block
}

// Stat is a headline number in the About section.
type Stat struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// Tech is one logo in the tech stack marquee.
type Tech struct {
	Title string `yaml:"title" json:"title"`
	Href  string `yaml:"href" json:"href"`
	Color string `yaml:"color" json:"color"`
}

// Experience is an education, work or certification entry.
type Experience struct {
	Type        string   `yaml:"type" json:"type"`
	Title       string   `yaml:"title" json:"title"`
	Company     string   `yaml:"company" json:"company"`
	Period      string   `yaml:"period" json:"period"`
	Description string   `yaml:"description" json:"description"`
	Skills      []string `yaml:"skills" json:"skills"`
}

// Link is an outbound or in-page link.
type Link struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
	Icon  string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// ContactCopy is the text of the contact section.
type ContactCopy struct {
	Heading string `yaml:"heading" json:"heading"`
	Blurb   string `yaml:"blurb" json:"blurb"`
}

// Parse decodes a persona from YAML and validates it.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	if len(p.Nav) == 0 {
		p.Nav = append([]sections.Section(nil), sections.DefaultNav...)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadFile reads a persona from a YAML file on disk.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks the fields the page cannot render without.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Slug) == "" {
		return fmt.Errorf("profile slug is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("profile %s: name is required", p.Slug)
	}
	seen := make(map[string]bool, len(p.Nav))
	for _, s := range p.Nav {
		if s.ID == "" {
			return fmt.Errorf("profile %s: nav section without id", p.Slug)
		}
		if seen[s.ID] {
			return fmt.Errorf("profile %s: duplicate nav section %q", p.Slug, s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}

// FirstName returns the first word of Name.
func (p *Profile) FirstName() string {
	if f := strings.Fields(p.Name); len(f) > 0 {
		return f[0]
	}
	return p.Name
}

// Normalizer returns the repository normalizer carrying this persona's
// featured overrides.
func (p *Profile) Normalizer() repos.Normalizer {
	return repos.Normalizer{Overrides: p.Featured}
}

// StaticCatalog returns the hand-curated project list.
func (p *Profile) StaticCatalog() *repos.StaticCatalog {
	return repos.NewStaticCatalog(p.Projects)
}
