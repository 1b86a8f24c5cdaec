package contact

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBodyBytes = 64 << 10

// RegisterRoutes mounts POST /api/contact on the given router.
func RegisterRoutes(r chi.Router, dispatcher *Dispatcher, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r.Post("/api/contact", handleSubmit(dispatcher, logger))
}

func handleSubmit(dispatcher *Dispatcher, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Request
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}

		if err := req.Validate(); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				writeJSON(w, http.StatusBadRequest, map[string]interface{}{
					"error":  err.Error(),
					"fields": verr.Fields,
				})
				return
			}
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		if !dispatcher.Configured() {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": ErrNotConfigured.Error()})
			return
		}

		msg, err := dispatcher.Deliver(r.Context(), r.URL.Query().Get("persona"), req)
		if err != nil {
			logger.Error("contact delivery failed", zap.Error(err))
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": "message could not be delivered"})
			return
		}
		writeJSON(w, http.StatusAccepted, map[string]string{"id": msg.ID})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
