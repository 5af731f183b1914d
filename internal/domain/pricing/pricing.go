// Package pricing turns a catalog policy's base amounts into the premium and
// cover offered to a specific customer.
package pricing

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrInvalidInput is returned for negative base amounts or a birth date after asOf.
var ErrInvalidInput = errors.New("invalid pricing input")

// Bracket applies Multiplier to customers whose age falls in [MinAge, MaxAge].
type Bracket struct {
	MinAge     int
	MaxAge     int
	Multiplier decimal.Decimal
}

// DefaultMultiplier applies when no bracket matches the age.
var DefaultMultiplier = decimal.NewFromInt(1)

// Brackets is the canonical age adjustment table.
var Brackets = []Bracket{
	{MinAge: 0, MaxAge: 18, Multiplier: decimal.RequireFromString("0.7")},
	{MinAge: 19, MaxAge: 30, Multiplier: decimal.RequireFromString("0.8")},
	{MinAge: 31, MaxAge: 50, Multiplier: DefaultMultiplier},
	{MinAge: 51, MaxAge: 65, Multiplier: decimal.RequireFromString("1.2")},
	{MinAge: 66, MaxAge: 100, Multiplier: decimal.RequireFromString("1.5")},
}

// Base holds the catalog amounts a quote is derived from.
type Base struct {
	Premium decimal.Decimal
	Cover   decimal.Decimal
}

// Result is the priced offer plus the inputs that produced it.
type Result struct {
	Premium    decimal.Decimal
	Cover      decimal.Decimal
	Age        int
	Multiplier decimal.Decimal
}

// AgeAt returns the age in whole years on asOf, counting a birthday only once
// it has been reached in asOf's calendar year.
func AgeAt(dob, asOf time.Time) int {
	age := asOf.Year() - dob.Year()
	if asOf.Month() < dob.Month() || (asOf.Month() == dob.Month() && asOf.Day() < dob.Day()) {
		age--
	}

	return age
}

// MultiplierFor returns the multiplier of the first bracket containing age.
func MultiplierFor(age int) decimal.Decimal {
	for _, bracket := range Brackets {
		if bracket.MinAge <= age && age <= bracket.MaxAge {
			return bracket.Multiplier
		}
	}

	return DefaultMultiplier
}

// ComputePremiumAndCover prices a policy for a customer born on dob, as of asOf.
// Both amounts are scaled by the same multiplier and rounded to 2 decimal places.
func ComputePremiumAndCover(base Base, dob, asOf time.Time) (Result, error) {
	if base.Premium.IsNegative() || base.Cover.IsNegative() {
		return Result{}, errors.Wrap(ErrInvalidInput, "base amounts must not be negative")
	}
	if dob.After(asOf) {
		return Result{}, errors.Wrap(ErrInvalidInput, "date of birth is after the pricing date")
	}

	age := AgeAt(dob, asOf)
	multiplier := MultiplierFor(age)

	return Result{
		Premium:    base.Premium.Mul(multiplier).Round(2),
		Cover:      base.Cover.Mul(multiplier).Round(2),
		Age:        age,
		Multiplier: multiplier,
	}, nil
}
