package adapters

import (
	"time"

	"github.com/finance-tracker/planner/internal/application/adapter"
)

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

var _ adapter.Clock = SystemClock{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
