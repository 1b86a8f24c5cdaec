package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/folio-dev/folio/internal/content"
	"github.com/folio-dev/folio/internal/repos"
)

// persona resolves the optional persona argument.
func (s *Server) persona(request mcp.CallToolRequest) (*content.Profile, error) {
	slug := request.GetString("persona", "")
	if slug == "" {
		return s.library.Default(), nil
	}
	p, ok := s.library.Get(slug)
	if !ok {
		return nil, fmt.Errorf("unknown persona %q (available: %s)", slug, strings.Join(s.library.Slugs(), ", "))
	}
	return p, nil
}

// handleListProjects loads the persona's project list once and returns it
// as JSON. A failed fetch yields an empty list, as on the page.
func (s *Server) handleListProjects(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := s.persona(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	provider := repos.NewProvider(s.catalog(p), s.logger)
	defer provider.Close()
	items := provider.Load(ctx)

	if lang := request.GetString("language", ""); lang != "" {
		filtered := make([]repos.DisplayItem, 0, len(items))
		for _, it := range items {
			if it.Language != nil && strings.EqualFold(*it.Language, lang) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	out, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding projects: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

// handleGetProfile returns the persona's profile as markdown or JSON.
func (s *Server) handleGetProfile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := s.persona(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if request.GetString("format", "markdown") == "json" {
		out, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encoding profile: %v", err)), nil
		}
		return mcp.NewToolResultText(string(out)), nil
	}
	return mcp.NewToolResultText(formatProfile(p)), nil
}

// handleListSections returns the nav order as a markdown list.
func (s *Server) handleListSections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := s.persona(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	for i, sec := range p.Nav {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, sec.Label, sec.Anchor())
	}
	return mcp.NewToolResultText(b.String()), nil
}

// formatProfile renders a compact markdown summary of p.
func formatProfile(p *content.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Name)
	if p.Title != "" {
		fmt.Fprintf(&b, "**%s**", p.Title)
		if p.Location != "" {
			fmt.Fprintf(&b, " · %s", p.Location)
		}
		b.WriteString("\n\n")
	}
	if p.Summary != "" {
		b.WriteString(p.Summary + "\n\n")
	}
	if len(p.Hero.Roles) > 0 {
		fmt.Fprintf(&b, "Roles: %s\n\n", strings.Join(p.Hero.Roles, ", "))
	}

	if len(p.TechStack) > 0 {
		b.WriteString("## Tech stack\n\n")
		names := make([]string, len(p.TechStack))
		for i, t := range p.TechStack {
			names[i] = t.Title
		}
		b.WriteString(strings.Join(names, ", ") + "\n\n")
	}

	if len(p.Experience) > 0 {
		b.WriteString("## Experience\n\n")
		for _, e := range p.Experience {
			fmt.Fprintf(&b, "- %s, %s (%s)\n", e.Title, e.Company, e.Period)
		}
		b.WriteString("\n")
	}

	if len(p.Socials) > 0 || p.Email != "" {
		b.WriteString("## Links\n\n")
		if p.Email != "" {
			fmt.Fprintf(&b, "- Email: %s\n", p.Email)
		}
		if p.GitHubUser != "" {
			fmt.Fprintf(&b, "- GitHub: https://github.com/%s\n", p.GitHubUser)
		}
		for _, l := range p.Socials {
			fmt.Fprintf(&b, "- %s: %s\n", l.Label, l.Href)
		}
	}
	return b.String()
}
