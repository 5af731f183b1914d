package entity

import (
	"time"

	"github.com/google/uuid"
)

// PolicyHistory is an immutable audit record of one status a quote has held.
type PolicyHistory struct {
	ID        uuid.UUID
	QuoteID   uuid.UUID
	Status    QuoteStatus
	ChangedAt time.Time
}
