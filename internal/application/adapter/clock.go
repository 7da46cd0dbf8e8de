// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock supplies the current time to use cases, so date-relative
// calculations never read the system clock directly.
type Clock interface {
	Now() time.Time
}
