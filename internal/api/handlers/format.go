package handlers

import (
	"math"
	"net/http"
	"strconv"

	"solar-chrome-service/internal/api/dto"
	"solar-chrome-service/internal/chrome"
)

// Format renders a number with Korean-locale grouping for display.
func Format(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	raw := r.URL.Query().Get("value")
	if raw == "" {
		writeError(w, r, http.StatusBadRequest, "value is required")
		return
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		writeError(w, r, http.StatusBadRequest, "value must be a finite number")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FormatResponse{
		Value:     v,
		Formatted: chrome.FormatNumber(v),
	})
}
