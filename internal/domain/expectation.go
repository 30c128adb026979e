package domain

import "github.com/shopspring/decimal"

// Expectation describes the record an action under test should produce.
// Zero-valued fields are not checked.
type Expectation struct {
	// Statuses the record may carry and still satisfy the expectation
	// (an order that is abstractly "still open" may render as ACTIVE or
	// PARTIALLY FILLED).
	Status []string
	// Side as requested; the displayed side is derived from it together
	// with TermSymbol.
	Side       Side
	TermSymbol bool
	Symbol     string
	Tenor      string
	OrderType  string
	// Amount actually submitted. Callers take this from the action
	// trigger's report, not the original request, since the live system
	// may clamp it.
	Amount decimal.Decimal
	TIF    string
	// Actor is the submitting user.
	Actor string
}

// ActionResult is what an ActionTrigger reports after performing the
// action under test.
type ActionResult struct {
	// Identifier of the record the action created, when the trigger
	// knows it.
	Identifier string
	// Amount actually submitted, possibly clamped by the live system.
	Amount decimal.Decimal
}
