package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteStatus is the lifecycle state of a quote.
type QuoteStatus string

const (
	// QuoteStatusNew is the state of a freshly priced quote.
	QuoteStatusNew QuoteStatus = "NEW"
	// QuoteStatusQuoted means the customer accepted the offer.
	QuoteStatusQuoted QuoteStatus = "QUOTED"
	// QuoteStatusLive means the policy was paid for and is in force. Terminal.
	QuoteStatusLive QuoteStatus = "LIVE"
)

// String returns the string representation of the QuoteStatus.
func (s QuoteStatus) String() string {
	return string(s)
}

// IsValid checks if the QuoteStatus is a known value.
func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusNew, QuoteStatusQuoted, QuoteStatusLive:
		return true
	default:
		return false
	}
}

// Quote ties a customer to a catalog policy at a fixed price.
//
// Premium and Cover are set once when the quote is created. BuyDate and Expiry
// stay nil until the quote goes LIVE and are never changed afterwards.
type Quote struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	PolicyID   uuid.UUID
	PolicyType PolicyType
	Status     QuoteStatus
	Premium    decimal.Decimal
	Cover      decimal.Decimal
	BuyDate    *time.Time
	Expiry     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Clone returns a deep copy so callers can derive a new state without touching q.
func (q *Quote) Clone() *Quote {
	if q == nil {
		return nil
	}

	cloned := *q
	if q.BuyDate != nil {
		buyDate := *q.BuyDate
		cloned.BuyDate = &buyDate
	}
	if q.Expiry != nil {
		expiry := *q.Expiry
		cloned.Expiry = &expiry
	}

	return &cloned
}
