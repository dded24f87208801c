package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"solar-chrome-service/internal/ports"
)

// HealthHandler reports liveness plus preference-storage reachability.
type HealthHandler struct {
	Store ports.KeyValueStore
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := map[string]string{"status": "ok", "storage": "ok"}

	if h.Store == nil {
		res["storage"] = "unavailable"
	} else {
		ctx, cancel := context.WithTimeout(r.Context(), time.Second)
		defer cancel()

		// a miss still proves the store answers
		if _, err := h.Store.Get(ctx, "health:probe"); err != nil && !errors.Is(err, ports.ErrNotFound) {
			res["storage"] = "unavailable"
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}
