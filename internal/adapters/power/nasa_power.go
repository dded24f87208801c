package power

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"solar-chrome-service/internal/domain"
	"solar-chrome-service/internal/platform/obs"
	"solar-chrome-service/internal/ports"
)

// NASAPowerProvider implements IrradianceProvider using the NASA POWER
// climatology API.
//
// It coordinates:
//   - Persistent GHI caching
//   - External API calls with retry/backoff
//   - Client-side rate limiting
//
// The provider is safe for concurrent use.
type NASAPowerProvider struct {
	session   *http.Client
	baseURL   string
	parameter string
	community string
	limiter   *rate.Limiter
	cache     ports.KeyValueStore
}

// NewNASAPowerProvider builds a provider against baseURL. rps throttles
// upstream calls; the public POWER API allows roughly one request per
// second. A nil cache disables GHI caching.
func NewNASAPowerProvider(
	baseURL string,
	parameter string,
	community string,
	rps float64,
	cache ports.KeyValueStore,
) (*NASAPowerProvider, error) {
	if baseURL == "" {
		return nil, errors.New("NASA POWER base URL is empty")
	}
	if parameter == "" {
		parameter = "ALLSKY_SFC_SW_DWN"
	}
	if community == "" {
		community = "RE"
	}
	if rps <= 0 {
		rps = 1
	}

	provider := &NASAPowerProvider{
		session:   &http.Client{Timeout: 10 * time.Second},
		baseURL:   baseURL,
		parameter: parameter,
		community: community,
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
		cache:     cache,
	}

	return provider, nil
}

// cacheKey renders coordinates at fixed precision so nearby queries
// share one entry.
func (p *NASAPowerProvider) cacheKey(c domain.Coordinates) string {
	return fmt.Sprintf("ghi:%.4f:%.4f", c.Lat, c.Lon)
}

type powerResponse struct {
	Properties struct {
		Parameter map[string]map[string]float64 `json:"parameter"`
	} `json:"properties"`
}

// AnnualGHI returns the annual irradiance (kWh/m2/year) at the given
// coordinates, from cache when possible.
func (p *NASAPowerProvider) AnnualGHI(ctx context.Context, c domain.Coordinates) (_ float64, err error) {
	defer obs.Time(ctx, "power.AnnualGHI")(&err)

	if !c.Valid() {
		return 0, fmt.Errorf("annual ghi: invalid coordinates lat=%v lon=%v", c.Lat, c.Lon)
	}

	key := p.cacheKey(c)
	if p.cache != nil {
		data, err := p.cache.Get(ctx, key)
		switch {
		case err == nil:
			var ghi float64
			if json.Unmarshal(data, &ghi) == nil {
				return ghi, nil
			}
			log.Printf("ghi cache corrupt entry key=%q, refetching", key)
		case !errors.Is(err, ports.ErrNotFound):
			return 0, fmt.Errorf("ghi cache read: %w", err)
		}
	}

	ghi, err := p.fetchAnnualGHI(ctx, c)
	if err != nil {
		return 0, err
	}

	if p.cache != nil {
		data, _ := json.Marshal(ghi)
		if err := p.cache.Put(ctx, key, data); err != nil {
			log.Printf("ghi cache write failed: %v", err)
		}
	}

	return ghi, nil
}

// fetchAnnualGHI calls the POWER climatology endpoint and extracts the
// annual value for the configured parameter.
func (p *NASAPowerProvider) fetchAnnualGHI(ctx context.Context, c domain.Coordinates) (float64, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return 0, err
		}
	}

	q := url.Values{}
	q.Set("parameters", p.parameter)
	q.Set("community", p.community)
	q.Set("latitude", fmt.Sprintf("%v", c.Lat))
	q.Set("longitude", fmt.Sprintf("%v", c.Lon))
	q.Set("format", "JSON")
	endpoint := p.baseURL + "?" + q.Encode()

	resp, err := p.doWithRetry(ctx, func() (*http.Request, error) {
		return p.newRequest(ctx, endpoint)
	})
	if err != nil {
		return 0, fmt.Errorf("power request failed: %w", err)
	}
	defer resp.Body.Close()

	var pr powerResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return 0, fmt.Errorf("decode power response: %w", err)
	}

	values, ok := pr.Properties.Parameter[p.parameter]
	if !ok {
		return 0, fmt.Errorf("power response missing parameter %q", p.parameter)
	}

	ghi, ok := values["ANN"]
	if !ok {
		return 0, fmt.Errorf("power response missing annual value for %q", p.parameter)
	}

	return ghi, nil
}
