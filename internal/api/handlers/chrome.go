package handlers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"solar-chrome-service/internal/api/dto"
	"solar-chrome-service/internal/chrome"
)

// ChromeHandler exposes the shared page-chrome: live overlay and alert
// state, plus the navigation and theme declarations every page embeds.
type ChromeHandler struct {
	Svc *chrome.Service
}

func (h *ChromeHandler) State(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, stateResponse(h.Svc))
}

func stateResponse(svc *chrome.Service) dto.ChromeStateResponse {
	loading := svc.Loading()
	alerts := svc.Alerts()

	res := dto.ChromeStateResponse{
		Loading: dto.LoadingResponse{Visible: loading.Visible, Message: loading.Message},
		Alerts:  make([]dto.AlertResponse, 0, len(alerts)),
	}
	for _, a := range alerts {
		res.Alerts = append(res.Alerts, dto.AlertResponse{
			ID:        a.ID,
			Message:   a.Text,
			Severity:  a.Severity.String(),
			CreatedAt: a.CreatedAt,
		})
	}
	return res
}

// Loading shows (POST) or hides (DELETE) the full-page busy indicator.
func (h *ChromeHandler) Loading(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var req dto.ShowLoadingRequest
		// an empty body selects the default message
		if err := decodeJSON(r, &req); err != nil && err != io.EOF {
			writeError(w, r, http.StatusBadRequest, "invalid json body")
			return
		}

		h.Svc.ShowLoading(req.Message)

		state := h.Svc.Loading()
		writeJSON(w, r, http.StatusOK, dto.LoadingResponse{Visible: state.Visible, Message: state.Message})
	case http.MethodDelete:
		h.Svc.HideLoading()
		w.WriteHeader(http.StatusNoContent)
	default:
		w.Header().Set("Allow", "POST, DELETE")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// Alerts attaches a new alert banner.
func (h *ChromeHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.CreateAlertRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, r, http.StatusBadRequest, "message is required")
		return
	}

	severity := chrome.NormalizeSeverity(req.Severity)
	id := h.Svc.ShowAlert(req.Message, severity)

	for _, a := range h.Svc.Alerts() {
		if a.ID == id {
			writeJSON(w, r, http.StatusCreated, dto.AlertResponse{
				ID:        a.ID,
				Message:   a.Text,
				Severity:  a.Severity.String(),
				CreatedAt: a.CreatedAt,
			})
			return
		}
	}

	// already expired or dismissed between the two calls
	writeJSON(w, r, http.StatusCreated, dto.AlertResponse{
		ID:       id,
		Message:  req.Message,
		Severity: severity.String(),
	})
}

// AlertByID dismisses one alert.
func (h *ChromeHandler) AlertByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", http.MethodDelete)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/chrome/alerts/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id < 1 {
		writeError(w, r, http.StatusBadRequest, "invalid alert id")
		return
	}

	if !h.Svc.Dismiss(id) {
		writeError(w, r, http.StatusNotFound, "alert not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Manifest serves the navigation items, theme tokens, the severity
// color map, and the footer line.
func (h *ChromeHandler) Manifest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	nav := chrome.Nav()
	items := make([]dto.NavItemResponse, 0, len(nav))
	for _, n := range nav {
		items = append(items, dto.NavItemResponse{ID: n.ID, Label: n.Label, Path: n.Path})
	}

	theme := chrome.DefaultTheme
	colors := make(map[string]string)
	for _, s := range chrome.Severities() {
		colors[s.String()] = theme.SeverityColor(s)
	}

	res := dto.ManifestResponse{
		Nav: items,
		Theme: dto.ThemeResponse{
			Primary:   theme.Primary,
			Secondary: theme.Secondary,
			Accent:    theme.Accent,
			Warning:   theme.Warning,
			Success:   theme.Success,
			Info:      theme.Info,
		},
		SeverityColors: colors,
		Footer:         chrome.FooterText,
	}

	writeJSON(w, r, http.StatusOK, res)
}

// ThemeCSS serves the generated stylesheet for the theme tokens.
func (h *ChromeHandler) ThemeCSS(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.WriteString(w, chrome.DefaultTheme.CSS())
}
