package model

import (
	"time"

	"github.com/google/uuid"
)

// PolicyHistoryModel mirrors the append-only 'policy_history' table.
type PolicyHistoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	QuoteID   uuid.UUID `gorm:"type:uuid;not null;index:idx_policy_history_quote_changed,priority:1"`
	Status    string    `gorm:"type:varchar(10);not null"`
	ChangedAt time.Time `gorm:"not null;index:idx_policy_history_quote_changed,priority:2"`
	// Seq is assigned by the database in insert order.
	Seq int64 `gorm:"autoIncrement;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (PolicyHistoryModel) TableName() string {
	return "policy_history"
}
