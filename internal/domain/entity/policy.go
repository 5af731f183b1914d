package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PolicyType is the unique type code of a catalog policy.
type PolicyType string

const (
	PolicyTypePersonalAccident PolicyType = "personal-accident"
	PolicyTypeHealthInsurance  PolicyType = "health-insurance"
	PolicyTypeLifeInsurance    PolicyType = "life-insurance"
	PolicyTypeHomeInsurance    PolicyType = "home-insurance"
	PolicyTypeAutoInsurance    PolicyType = "auto-insurance"
)

// String returns the string representation of the PolicyType.
func (t PolicyType) String() string {
	return string(t)
}

// IsValid checks if the PolicyType is one of the catalog codes.
func (t PolicyType) IsValid() bool {
	switch t {
	case PolicyTypePersonalAccident, PolicyTypeHealthInsurance, PolicyTypeLifeInsurance,
		PolicyTypeHomeInsurance, PolicyTypeAutoInsurance:
		return true
	default:
		return false
	}
}

// Policy is a read-only catalog entry. Premium and Cover are the base amounts
// before the age adjustment applied at quote time.
type Policy struct {
	ID        uuid.UUID
	Name      string
	Type      PolicyType
	Premium   decimal.Decimal
	Cover     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultCatalog returns the policies every deployment starts with.
// IDs are left zero; the storage layer assigns them.
func DefaultCatalog() []Policy {
	return []Policy{
		{Name: "Personal Accident", Type: PolicyTypePersonalAccident, Premium: decimal.RequireFromString("120.00"), Cover: decimal.RequireFromString("50000.00")},
		{Name: "Health Insurance", Type: PolicyTypeHealthInsurance, Premium: decimal.RequireFromString("500.00"), Cover: decimal.RequireFromString("100000.00")},
		{Name: "Life Insurance", Type: PolicyTypeLifeInsurance, Premium: decimal.RequireFromString("1000.00"), Cover: decimal.RequireFromString("250000.00")},
		{Name: "Home Insurance", Type: PolicyTypeHomeInsurance, Premium: decimal.RequireFromString("300.00"), Cover: decimal.RequireFromString("200000.00")},
		{Name: "Auto Insurance", Type: PolicyTypeAutoInsurance, Premium: decimal.RequireFromString("450.00"), Cover: decimal.RequireFromString("150000.00")},
	}
}
