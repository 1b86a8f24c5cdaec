package session

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/folio-dev/folio/internal/content"
	"github.com/folio-dev/folio/internal/motion"
	"github.com/folio-dev/folio/internal/repos"
)

const maxMessageBytes = 64 << 10

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades page connections into sessions.
type Handler struct {
	Library *content.Library
	// Catalog picks the project source for a persona.
	Catalog func(p *content.Profile) repos.Catalog
	Trail   motion.SpringConfig
	Logger  *zap.Logger
}

// RegisterRoutes mounts GET /ws/session on the given router.
func RegisterRoutes(r chi.Router, h *Handler) {
	if h.Logger == nil {
		h.Logger = zap.NewNop()
	}
	r.Get("/ws/session", h.handleWebSocket)
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	profile := h.Library.Default()
	if slug := r.URL.Query().Get("persona"); slug != "" {
		p, ok := h.Library.Get(slug)
		if !ok {
			http.NotFound(w, r)
			return
		}
		profile = p
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageBytes)

	var writeMu sync.Mutex
	emit := func(v interface{}) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(v); err != nil {
			h.Logger.Debug("websocket write", zap.Error(err))
		}
	}

	sess := New(Config{
		Nav:     profile.Nav,
		Catalog: h.Catalog(profile),
		Trail:   h.Trail,
	}, emit, h.Logger.With(zap.String("persona", profile.Slug)))
	defer sess.Close()

	sess.Start(r.Context())

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.Logger.Warn("websocket read", zap.Error(err))
			}
			return
		}

		var in Inbound
		if err := json.Unmarshal(msg, &in); err != nil {
			sess.send(ErrorMessage{Type: TypeError, Message: "invalid message format"})
			continue
		}
		if err := sess.Apply(in); err != nil {
			sess.send(ErrorMessage{Type: TypeError, Message: err.Error()})
		}
	}
}
