package handlers

import (
	"math"
	"net/http"
	"strconv"

	"solar-chrome-service/internal/api/dto"
	"solar-chrome-service/internal/chrome"
	"solar-chrome-service/internal/domain"
	"solar-chrome-service/internal/ports"
)

// LocationHandler validates coordinates and serves irradiance lookups.
type LocationHandler struct {
	Provider ports.IrradianceProvider
	Chrome   *chrome.Service
	Korea    domain.Bounds
}

// parseCoordinates reads the lat/lon query parameters. ok is false when
// either is missing or not numeric; NaN parses and is left for range
// validation to reject.
func parseCoordinates(r *http.Request) (domain.Coordinates, bool) {
	latStr := r.URL.Query().Get("lat")
	lonStr := r.URL.Query().Get("lon")
	if latStr == "" || lonStr == "" {
		return domain.Coordinates{}, false
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return domain.Coordinates{}, false
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return domain.Coordinates{}, false
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, true
}

func (h *LocationHandler) Validate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	c, ok := parseCoordinates(r)
	if !ok {
		writeJSON(w, r, http.StatusOK, dto.ValidateLocationResponse{
			Valid:   false,
			Message: "위도와 경도를 입력해주세요.",
		})
		return
	}

	valid := c.Valid()
	korea := h.Korea.Contains(c)

	res := dto.ValidateLocationResponse{
		Valid:       valid,
		KoreaRegion: korea,
	}
	if valid {
		res.Message = "유효한 좌표입니다."
	} else {
		res.Message = "유효하지 않은 좌표입니다."
	}
	if valid && !korea {
		res.Warning = "한국 지역 밖의 좌표입니다. 데이터 정확도가 떨어질 수 있습니다."
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Irradiance serves the annual GHI for a position. An upstream failure
// is routed through the chrome error handler and answered with the
// regional fallback estimate instead of an error.
func (h *LocationHandler) Irradiance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	c, ok := parseCoordinates(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "위도와 경도를 입력해주세요.")
		return
	}
	if !c.Valid() {
		writeError(w, r, http.StatusBadRequest, "유효하지 않은 좌표입니다.")
		return
	}

	h.Chrome.ShowLoading("")

	source := "nasa_power"
	ghi, err := h.Provider.AnnualGHI(r.Context(), c)
	if err != nil {
		h.Chrome.HandleAPIError(err, "irradiance.fetch")
		ghi = domain.FallbackGHI(c, h.Korea)
		source = "fallback"
	} else {
		h.Chrome.HideLoading()
	}

	writeJSON(w, r, http.StatusOK, dto.IrradianceResponse{
		GHI:    math.Round(ghi*10) / 10,
		Source: source,
	})
}
