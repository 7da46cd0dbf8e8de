package mock

import (
	"sync"
	"time"
)

// Time is a settable clock. Until SetCurrentTime is called it follows the
// wall clock; afterwards it stays frozen at the given instant.
type Time struct {
	mu      sync.RWMutex
	current time.Time
}

func NewTime() *Time {
	return &Time{}
}

func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = currentTime.UTC()
}

// Reset returns the clock to wall time.
func (t *Time) Reset() {
	t.SetCurrentTime(time.Time{})
}

func (t *Time) Now() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.current.IsZero() {
		return time.Now().UTC()
	}
	return t.current
}
