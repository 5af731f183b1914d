package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteModel mirrors the 'quotes' table. Deleting a customer removes their quotes.
type QuoteModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CustomerID uuid.UUID       `gorm:"type:uuid;not null;index"`
	PolicyID   uuid.UUID       `gorm:"type:uuid;not null"`
	PolicyType string          `gorm:"type:varchar(50);not null"`
	Status     string          `gorm:"type:varchar(10);not null;index"`
	Premium    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Cover      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	BuyDate    *time.Time
	Expiry     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Policy  *PolicyModel         `gorm:"foreignKey:PolicyID;constraint:OnDelete:RESTRICT"`
	History []PolicyHistoryModel `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (QuoteModel) TableName() string {
	return "quotes"
}
