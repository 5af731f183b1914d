// Package entity contains the core business objects of the insurance domain,
// each representing a unique, identifiable concept.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Customer is a person who can request quotes and hold live policies.
type Customer struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the customer.
	FirstName   string
	LastName    string
	DateOfBirth time.Time // Calendar date; the time part is always midnight UTC.
	Email       string    // Stored lower-cased; uniqueness is case-insensitive.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FullName returns the customer's display name.
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// NormalizeEmail returns the canonical form used for storage and uniqueness checks.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
