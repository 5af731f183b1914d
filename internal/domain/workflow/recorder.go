package workflow

import (
	"time"

	"insurance/internal/domain/entity"

	"github.com/google/uuid"
)

// Record returns the history entry for moving from prev to next, or nil when
// the status did not change. A nil prev records next's initial status.
func Record(prev, next *entity.Quote, at time.Time) *entity.PolicyHistory {
	if prev != nil && prev.Status == next.Status {
		return nil
	}

	return &entity.PolicyHistory{
		ID:        uuid.New(),
		QuoteID:   next.ID,
		Status:    next.Status,
		ChangedAt: at,
	}
}
