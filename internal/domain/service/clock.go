package service

import "time"

// Clock supplies the "as of" time for pricing and lifecycle timestamps.
type Clock interface {
	Now() time.Time
}
