package chrome

import (
	"log"
	"sync"
	"time"

	"solar-chrome-service/internal/ports"
)

// DefaultLoadingMessage is shown when ShowLoading gets an empty message.
const DefaultLoadingMessage = "처리 중..."

// alertTTL is the fixed lifetime of an alert before automatic removal.
const alertTTL = 5 * time.Second

// LoadingState is the single full-page busy indicator.
type LoadingState struct {
	Visible bool
	Message string
}

// Alert is one dismissible notification banner.
type Alert struct {
	ID        int64
	Text      string
	Severity  Severity
	CreatedAt time.Time
}

// Service holds the shared page-chrome state: the loading overlay and
// the stack of alert banners, most recent first. Handlers share one
// instance, so state sits behind a mutex and accessors return snapshot
// copies. Time comes from an injected clock so expiry is testable.
type Service struct {
	clock ports.Clock
	store ports.KeyValueStore

	mu      sync.Mutex
	loading LoadingState
	alerts  []Alert
	timers  map[int64]ports.Timer
	nextID  int64
}

// NewService builds a chrome service on the given ports. A nil clock
// falls back to the runtime timers; a nil store means persistence is
// unavailable and Save/Load degrade to logged no-ops.
func NewService(clk ports.Clock, store ports.KeyValueStore) *Service {
	if clk == nil {
		clk = systemClock{}
	}

	return &Service{
		clock:  clk,
		store:  store,
		timers: make(map[int64]ports.Timer),
	}
}

// ShowLoading makes the overlay visible with the given message. An
// empty message selects the default. Calling while already visible
// just replaces the message.
func (s *Service) ShowLoading(message string) {
	if message == "" {
		message = DefaultLoadingMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = LoadingState{Visible: true, Message: message}
}

// HideLoading hides the overlay. No-op when already hidden.
func (s *Service) HideLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading.Visible = false
}

// Loading returns the current overlay state.
func (s *Service) Loading() LoadingState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// ShowAlert attaches a new alert at the top of the stack and schedules
// its automatic removal. It returns the alert id, the handle used for
// manual dismissal.
func (s *Service) ShowAlert(text string, severity Severity) int64 {
	if !severity.known() {
		log.Printf("severity=%d out of range, using info", severity)
		severity = SeverityInfo
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.alerts = append([]Alert{{
		ID:        id,
		Text:      text,
		Severity:  severity,
		CreatedAt: s.clock.Now(),
	}}, s.alerts...)
	s.timers[id] = s.clock.AfterFunc(alertTTL, func() { s.expire(id) })

	return id
}

// Dismiss removes an alert immediately and cancels its pending
// automatic removal. It reports whether the alert was still attached.
func (s *Service) Dismiss(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}

	return s.removeLocked(id)
}

// expire runs when an alert's timer fires. The alert may have been
// dismissed in the meantime, so removal only happens when it is still
// attached; a stale timer never touches another alert.
func (s *Service) expire(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.timers, id)
	s.removeLocked(id)
}

func (s *Service) removeLocked(id int64) bool {
	for i, a := range s.alerts {
		if a.ID == id {
			s.alerts = append(s.alerts[:i], s.alerts[i+1:]...)
			return true
		}
	}
	return false
}

// Alerts returns the attached alerts, most recent first.
func (s *Service) Alerts() []Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

// Close stops all pending auto-removal timers. Attached alerts remain
// until dismissed.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

// systemClock is the fallback clock so a zero-config service works.
// Composition roots normally inject adapters/clock.SystemClock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, f func()) ports.Timer {
	return time.AfterFunc(d, f)
}
