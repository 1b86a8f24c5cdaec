package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/folio-dev/folio/internal/content"
	"github.com/folio-dev/folio/internal/motion"
	"github.com/folio-dev/folio/internal/repos"
	"github.com/folio-dev/folio/internal/sections"
)

// Options control how a page is rendered.
type Options struct {
	// BasePath prefixes stylesheet, script and API references.
	BasePath string
	// Live enables the realtime session (custom cursor, server-driven nav).
	Live bool
	// PreloadMS is how long the preloader stays up.
	PreloadMS int
	// ContactEnabled renders the contact form.
	ContactEnabled bool
	// Now stamps the footer year. Zero means time.Now.
	Now time.Time
}

// Renderer turns a persona into the portfolio page.
type Renderer struct {
	md   goldmark.Markdown
	tmpl *template.Template
}

// pageData holds the data passed to the HTML template.
type pageData struct {
	Profile        *content.Profile
	Nav            []sections.Section
	FirstSection   string
	CodeHTML       template.HTML
	AboutHTML      template.HTML
	Projects       []projectView
	ProjectsReady  bool
	DockTable      template.JS
	BasePath       string
	Live           bool
	PreloadMS      int
	ContactEnabled bool
	Year           int
}

// projectView is a DisplayItem plus its language name and accent colour.
type projectView struct {
	repos.DisplayItem
	Lang  string
	Color string
}

// NewRenderer parses the page template and configures markdown rendering.
func NewRenderer() (*Renderer, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("dracula"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &Renderer{md: md, tmpl: tmpl}, nil
}

// Render writes the page for p. A nil projects slice renders the Projects
// section as pending, to be filled in by the page script; a non-nil slice
// (even empty) is final.
func (r *Renderer) Render(w io.Writer, p *content.Profile, projects []repos.DisplayItem, opts Options) error {
	codeHTML, err := r.markdown(p.Hero.Code)
	if err != nil {
		return fmt.Errorf("rendering hero code: %w", err)
	}
	aboutHTML, err := r.markdown(p.About)
	if err != nil {
		return fmt.Errorf("rendering about: %w", err)
	}
	dock, err := dockTable(len(p.Dock))
	if err != nil {
		return err
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	data := pageData{
		Profile:        p,
		Nav:            p.Nav,
		CodeHTML:       codeHTML,
		AboutHTML:      aboutHTML,
		Projects:       projectViews(projects),
		ProjectsReady:  projects != nil,
		DockTable:      dock,
		BasePath:       opts.BasePath,
		Live:           opts.Live,
		PreloadMS:      opts.PreloadMS,
		ContactEnabled: opts.ContactEnabled,
		Year:           now.Year(),
	}
	if len(p.Nav) > 0 {
		data.FirstSection = p.Nav[0].ID
	}

	if err := r.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}
	return nil
}

// RenderString is Render into a string.
func (r *Renderer) RenderString(p *content.Profile, projects []repos.DisplayItem, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, p, projects, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *Renderer) markdown(src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

func projectViews(items []repos.DisplayItem) []projectView {
	out := make([]projectView, len(items))
	for i, it := range items {
		lang := ""
		if it.Language != nil {
			lang = *it.Language
		}
		out[i] = projectView{DisplayItem: it, Lang: lang, Color: repos.LanguageColor(lang)}
	}
	return out
}

// dockTable precomputes the magnification of every dock item for every
// hovered index: table[hovered][index].
func dockTable(n int) (template.JS, error) {
	table := make([][]motion.DockEffect, n)
	for h := 0; h < n; h++ {
		row := make([]motion.DockEffect, n)
		for i := 0; i < n; i++ {
			row[i] = motion.Dock(i, h)
		}
		table[h] = row
	}
	b, err := json.Marshal(table)
	if err != nil {
		return "", fmt.Errorf("encoding dock table: %w", err)
	}
	return template.JS(b), nil
}
