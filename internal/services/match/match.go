// Package match validates an extracted record against the expectation
// for the action that produced it. A mismatch is a real defect, never
// retried; the error carries both sides so the failure is diagnosable
// from the message alone.
package match

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hptabster/EWM-qa-demo/internal/domain"
	"github.com/hptabster/EWM-qa-demo/internal/services/parse"
)

// Tolerances loosen comparisons where display formatting loses
// information.
type Tolerances struct {
	// Amount is the absolute slack on amount comparisons, covering
	// one-decimal rounding of K/M volumes. Zero means the default of 1.
	Amount decimal.Decimal
}

func (t Tolerances) amount() decimal.Decimal {
	if t.Amount.IsZero() {
		return decimal.NewFromInt(1)
	}
	return t.Amount
}

// MismatchError reports the first expectation rule a record failed.
type MismatchError struct {
	Field       string
	Reason      string
	Record      domain.Record
	Expectation domain.Expectation
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("record mismatch on %s: %s; record=%v expectation=%+v",
		e.Field, e.Reason, e.Record, e.Expectation)
}

// Verify checks rec against exp, rule by rule in a fixed order, and
// returns a *MismatchError for the first failing rule. A rule whose
// field is absent from the record is skipped; not all record shapes
// expose all fields.
func Verify(rec domain.Record, exp domain.Expectation, tol Tolerances) error {
	fail := func(field, format string, args ...any) error {
		return &MismatchError{
			Field:       field,
			Reason:      fmt.Sprintf(format, args...),
			Record:      rec,
			Expectation: exp,
		}
	}

	if status, ok := rec.Get(domain.FieldStatus); ok && len(exp.Status) > 0 {
		if !statusAccepted(status, exp.Status) {
			return fail(domain.FieldStatus, "%q not in accepted set %v", status, exp.Status)
		}
	}

	if side, ok := rec.Get(domain.FieldSide); ok && exp.Side != "" {
		want := domain.ExpectedSide(exp.Side, exp.TermSymbol)
		if !strings.EqualFold(side, string(want)) {
			return fail(domain.FieldSide, "got %q, want %q (requested %q, termSymbol=%t)",
				side, want, exp.Side, exp.TermSymbol)
		}
	}

	if symbol, ok := rec.Get(domain.FieldSymbol); ok && exp.Symbol != "" {
		if !strings.EqualFold(stripSpaces(symbol), stripSpaces(exp.Symbol)) {
			return fail(domain.FieldSymbol, "got %q, want %q", symbol, exp.Symbol)
		}
	}

	if tenor, ok := rec.Get(domain.FieldTenor); ok && exp.Tenor != "" {
		if !domain.TenorMatches(exp.Tenor, tenor) {
			return fail(domain.FieldTenor, "got %q, want %q", tenor, exp.Tenor)
		}
	}

	if orderType, ok := rec.Get(domain.FieldOrderType); ok && exp.OrderType != "" {
		if !domain.OrderTypeMatches(exp.OrderType, orderType) {
			return fail(domain.FieldOrderType, "%q is not a rendering of %q (accepted: %v)",
				orderType, exp.OrderType, domain.OrderTypeRenderings(exp.OrderType))
		}
	}

	if vol, ok := rec.First("reqAmount", "requestedAmount", "amount"); ok && !exp.Amount.IsZero() {
		got := parse.VolToAmount(vol)
		if got.Sub(exp.Amount).Abs().GreaterThan(tol.amount()) {
			return fail("requestedAmount", "got %s (%q), want %s within %s",
				got, vol, exp.Amount, tol.amount())
		}
	}

	if exp.Symbol != "" {
		wantCcy := domain.BaseOrTermCurrency(exp.Symbol, exp.TermSymbol)
		if ccy, ok := rec.First("reqCcy", "requestedAmountCcy"); ok {
			if !strings.EqualFold(ccy, wantCcy) {
				return fail("requestedCurrency", "got %q, want %q", ccy, wantCcy)
			}
		}
		if ccy, ok := rec.First("fillCcy", "filledAmountCcy"); ok {
			if !strings.EqualFold(ccy, wantCcy) {
				return fail("filledCurrency", "got %q, want %q", ccy, wantCcy)
			}
		}
	}

	if tif, ok := rec.Get(domain.FieldTIF); ok && exp.TIF != "" {
		if !strings.EqualFold(tif, exp.TIF) {
			return fail(domain.FieldTIF, "got %q, want %q", tif, exp.TIF)
		}
	}

	if actor, ok := rec.First("username", "actor"); ok && exp.Actor != "" {
		if !strings.EqualFold(actor, exp.Actor) {
			return fail("actor", "got %q, want %q", actor, exp.Actor)
		}
	}

	return nil
}

func statusAccepted(status string, accepted []string) bool {
	for _, s := range accepted {
		if strings.EqualFold(status, s) {
			return true
		}
	}
	return false
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
