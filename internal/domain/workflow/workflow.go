// Package workflow implements the quote status state machine.
//
// Every transition returns the next quote value together with the history
// entry that records it, so persisting a transition means persisting both.
// Input quotes are never modified.
package workflow

import (
	"fmt"
	"time"

	"insurance/internal/domain/entity"
	domainerrors "insurance/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// ConfirmAccept must accompany Accept.
	ConfirmAccept = "accepted"
	// ConfirmPay must accompany Pay.
	ConfirmPay = "active"

	// PolicyTerm is how long a policy stays in force after purchase.
	PolicyTerm = 365 * 24 * time.Hour
)

// Event names a lifecycle step that needs an explicit confirmation token.
type Event string

const (
	EventAccept Event = "accept"
	EventPay    Event = "pay"
)

var confirmations = map[Event]string{
	EventAccept: ConfirmAccept,
	EventPay:    ConfirmPay,
}

// Confirm checks the token a caller supplied for event.
func Confirm(event Event, token string) error {
	expected, ok := confirmations[event]
	if !ok || token != expected {
		return domainerrors.ErrInvalidConfirmation.WrapMessage(fmt.Sprintf("status must be %q to %s a quote", expected, event))
	}

	return nil
}

// Transition is the outcome of a state machine step.
type Transition struct {
	From    entity.QuoteStatus // Empty for Create.
	Quote   *entity.Quote
	History *entity.PolicyHistory
}

// Create builds a NEW quote for the customer and policy at the given price.
func Create(customer *entity.Customer, policy *entity.Policy, premium, cover decimal.Decimal, at time.Time) Transition {
	quote := &entity.Quote{
		ID:         uuid.New(),
		CustomerID: customer.ID,
		PolicyID:   policy.ID,
		PolicyType: policy.Type,
		Status:     entity.QuoteStatusNew,
		Premium:    premium.Round(2),
		Cover:      cover.Round(2),
		CreatedAt:  at,
		UpdatedAt:  at,
	}

	return Transition{
		Quote:   quote,
		History: Record(nil, quote, at),
	}
}

// Accept moves a NEW quote to QUOTED.
func Accept(quote *entity.Quote, token string, at time.Time) (Transition, error) {
	if err := Confirm(EventAccept, token); err != nil {
		return Transition{}, err
	}

	return advance(quote, entity.QuoteStatusNew, entity.QuoteStatusQuoted, at, nil)
}

// Pay moves a QUOTED quote to LIVE, stamping the purchase and expiry dates.
func Pay(quote *entity.Quote, token string, at time.Time) (Transition, error) {
	if err := Confirm(EventPay, token); err != nil {
		return Transition{}, err
	}

	return advance(quote, entity.QuoteStatusQuoted, entity.QuoteStatusLive, at, func(next *entity.Quote) {
		buyDate := at
		expiry := at.Add(PolicyTerm)
		next.BuyDate = &buyDate
		next.Expiry = &expiry
	})
}

// CanTransition reports whether from -> to is an edge of the lifecycle.
func CanTransition(from, to entity.QuoteStatus) bool {
	switch from {
	case entity.QuoteStatusNew:
		return to == entity.QuoteStatusQuoted
	case entity.QuoteStatusQuoted:
		return to == entity.QuoteStatusLive
	default:
		return false
	}
}

func advance(quote *entity.Quote, from, to entity.QuoteStatus, at time.Time, mutate func(*entity.Quote)) (Transition, error) {
	if quote.Status != from || !CanTransition(from, to) {
		return Transition{}, domainerrors.ErrIllegalTransition.WrapMessage(
			fmt.Sprintf("quote %s is %s, expected %s", quote.ID, quote.Status, from))
	}

	next := quote.Clone()
	next.Status = to
	next.UpdatedAt = at
	if mutate != nil {
		mutate(next)
	}

	return Transition{
		From:    from,
		Quote:   next,
		History: Record(quote, next, at),
	}, nil
}
