package handlers

import (
	"net/http"
	"strings"

	"solar-chrome-service/internal/api/dto"
	"solar-chrome-service/internal/chrome"
)

// PrefsHandler exposes per-key UI preference storage. Reads follow the
// chrome Load semantics: a missing or unreadable entry is null, never
// an error.
type PrefsHandler struct {
	Svc *chrome.Service
}

func (h *PrefsHandler) ByKey(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimPrefix(r.URL.Path, "/prefs/")
	if key == "" || strings.Contains(key, "/") {
		writeError(w, r, http.StatusBadRequest, "invalid preference key")
		return
	}

	switch r.Method {
	case http.MethodGet:
		value := h.Svc.Load(r.Context(), key)
		writeJSON(w, r, http.StatusOK, dto.PreferenceResponse{Key: key, Value: value})
	case http.MethodPut:
		var req dto.PutPreferenceRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid json body")
			return
		}

		h.Svc.Save(r.Context(), key, req.Value)
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		h.Svc.Remove(r.Context(), key)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.Header().Set("Allow", "GET, PUT, DELETE")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}
