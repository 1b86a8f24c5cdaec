package site

import (
	"context"
	"net/http"
	"os/exec"
	"runtime"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/folio-dev/folio/internal/content"
	"github.com/folio-dev/folio/internal/repos"
)

// Handler serves the portfolio page and its static resources.
type Handler struct {
	Renderer *Renderer
	Library  *content.Library
	// Inline resolves projects while rendering. When nil the Projects
	// section is left pending for the live session or the page script.
	Inline    func(ctx context.Context, p *content.Profile) []repos.DisplayItem
	Options   Options
	AssetsDir string
	Logger    *zap.Logger
}

// RegisterRoutes mounts the page routes on the given router.
func RegisterRoutes(r chi.Router, h *Handler) {
	if h.Logger == nil {
		h.Logger = zap.NewNop()
	}
	r.Get("/", h.handleDefault)
	r.Get("/p/{persona}", h.handlePersona)
	r.Get("/style.css", staticText("text/css; charset=utf-8", cssContent))
	r.Get("/script.js", staticText("application/javascript; charset=utf-8", jsContent))
	if h.AssetsDir != "" {
		r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(h.AssetsDir))))
	}
}

func (h *Handler) handleDefault(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.Library.Default())
}

func (h *Handler) handlePersona(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "persona")
	p, ok := h.Library.Get(slug)
	if !ok {
		http.NotFound(w, r)
		return
	}
	h.render(w, r, p)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, p *content.Profile) {
	var projects []repos.DisplayItem
	if h.Inline != nil {
		projects = h.Inline(r.Context(), p)
	}

	opts := h.Options
	opts.BasePath = "/"
	page, err := h.Renderer.RenderString(p, projects, opts)
	if err != nil {
		h.Logger.Error("rendering page", zap.String("persona", p.Slug), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}

func staticText(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}

// OpenBrowser opens the given URL in the default browser.
func OpenBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
