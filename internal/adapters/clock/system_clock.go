package clock

import (
	"solar-chrome-service/internal/ports"
	"time"
)

// SystemClock implements ports.Clock over the runtime timers.
type SystemClock struct{}

func NewSystemClock() SystemClock { return SystemClock{} }

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) AfterFunc(d time.Duration, f func()) ports.Timer {
	return time.AfterFunc(d, f)
}
