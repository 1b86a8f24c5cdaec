package site

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/folio-dev/folio/internal/content"
	"github.com/folio-dev/folio/internal/progress"
	"github.com/folio-dev/folio/internal/repos"
)

// DefaultAssetPatterns are copied from the assets directory on export.
var DefaultAssetPatterns = []string{"**/*.png", "**/*.jpg", "**/*.jpeg", "**/*.svg", "**/*.webp", "**/*.ico"}

// Exporter writes a self-contained static build of one persona.
type Exporter struct {
	Renderer  *Renderer
	OutputDir string
	AssetsDir string   // optional; copied under assets/
	Assets    []string // doublestar patterns relative to AssetsDir
	PreloadMS int
	Reporter  progress.Reporter
	Logger    *zap.Logger
}

// ExportResult summarizes a finished export.
type ExportResult struct {
	Projects int
	Assets   int
	Files    []string
}

// Export loads the project list once and writes index.html, the repository
// JSON snapshot, the stylesheet, the script and any matching assets.
func (e *Exporter) Export(ctx context.Context, p *content.Profile, catalog repos.Catalog) (*ExportResult, error) {
	logger := e.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	reporter := e.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}

	assets, err := e.matchAssets()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Join(e.OutputDir, "api"), 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	total := 4 + len(assets)
	reporter.Start(total)
	defer reporter.Finish()
	step := 0
	advance := func(msg string) {
		step++
		reporter.Update(step, msg)
	}

	provider := repos.NewProvider(catalog, logger)
	defer provider.Close()
	projects := provider.Load(ctx)
	logger.Info("loaded projects for export",
		zap.String("persona", p.Slug),
		zap.Int("count", len(projects)),
		zap.Stringer("state", provider.State()),
	)

	res := &ExportResult{Projects: len(projects)}
	write := func(rel string, data []byte) error {
		if err := os.WriteFile(filepath.Join(e.OutputDir, rel), data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", rel, err)
		}
		res.Files = append(res.Files, rel)
		advance(rel)
		return nil
	}

	page, err := e.Renderer.RenderString(p, projects, Options{PreloadMS: e.PreloadMS})
	if err != nil {
		return nil, err
	}
	if err := write("index.html", []byte(page)); err != nil {
		return nil, err
	}

	snapshot, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding project snapshot: %w", err)
	}
	if err := write(filepath.Join("api", "github.json"), snapshot); err != nil {
		return nil, err
	}
	if err := write("style.css", []byte(cssContent)); err != nil {
		return nil, err
	}
	if err := write("script.js", []byte(jsContent)); err != nil {
		return nil, err
	}

	for _, rel := range assets {
		if err := e.copyAsset(rel); err != nil {
			return nil, err
		}
		res.Assets++
		res.Files = append(res.Files, filepath.Join("assets", rel))
		advance(rel)
	}
	return res, nil
}

// matchAssets lists files under AssetsDir matching any asset pattern.
func (e *Exporter) matchAssets() ([]string, error) {
	if e.AssetsDir == "" {
		return nil, nil
	}
	if _, err := os.Stat(e.AssetsDir); os.IsNotExist(err) {
		return nil, nil
	}
	patterns := e.Assets
	if len(patterns) == 0 {
		patterns = DefaultAssetPatterns
	}

	fsys := os.DirFS(e.AssetsDir)
	seen := make(map[string]bool)
	var out []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, filepath.ToSlash(pattern), doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("matching assets %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out, nil
}

func (e *Exporter) copyAsset(rel string) error {
	data, err := fs.ReadFile(os.DirFS(e.AssetsDir), rel)
	if err != nil {
		return fmt.Errorf("reading asset %s: %w", rel, err)
	}
	dst := filepath.Join(e.OutputDir, "assets", filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("writing asset %s: %w", rel, err)
	}
	return nil
}
