package repos

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the repository passthrough on the given router.
func RegisterRoutes(r chi.Router, catalog Catalog, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r.Get("/api/github", handleList(catalog, logger))
}

func handleList(catalog Catalog, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := catalog.Projects(r.Context())
		if err != nil {
			logger.Error("github passthrough failed", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, []DisplayItem{})
			return
		}
		if items == nil {
			items = []DisplayItem{}
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
