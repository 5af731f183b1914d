// Package clock provides the wall clock used for pricing and lifecycle timestamps.
package clock

import (
	"time"

	"insurance/internal/domain/service"
)

type systemClock struct{}

// New returns a clock reading UTC wall time truncated to microseconds, the
// precision PostgreSQL timestamps keep.
func New() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
