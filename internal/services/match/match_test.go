package match

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/hptabster/EWM-qa-demo/internal/domain"
)

func activeOrderRecord() domain.Record {
	return domain.Record{
		domain.FieldStatus:    "ACTIVE",
		domain.FieldSide:      "SELL",
		domain.FieldSymbol:    "EUR / USD",
		domain.FieldTenor:     "SPOT",
		domain.FieldOrderType: "LIMIT",
		domain.FieldTIF:       "IOC",
		domain.FieldTradeID:   "ORD-100:7",
		"reqAmount":           "250,000",
		"reqCcy":              "EUR",
		"fillCcy":             "EUR",
	}
}

func sellLimitExpectation() domain.Expectation {
	return domain.Expectation{
		Status:    []string{"ACTIVE", "FILLED"},
		Side:      domain.SideSell,
		Symbol:    "EUR/USD",
		Tenor:     "SPOT",
		OrderType: "LIMIT",
		Amount:    decimal.NewFromInt(250000),
		TIF:       "IOC",
	}
}

func TestVerify_MatchingRecordPasses(t *testing.T) {
	require.NoError(t, Verify(activeOrderRecord(), sellLimitExpectation(), Tolerances{}))
}

func TestVerify_AmountMismatchNamesField(t *testing.T) {
	rec := activeOrderRecord()
	rec["reqAmount"] = "240,000"

	err := Verify(rec, sellLimitExpectation(), Tolerances{})
	require.Error(t, err)

	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, "requestedAmount", mismatch.Field)
	require.Contains(t, mismatch.Error(), "240000")
	require.Contains(t, mismatch.Error(), "250000")
}

func TestVerify_AmountWithinToleranceAccepted(t *testing.T) {
	// one-decimal K/M rounding may shift the displayed amount by up to
	// one unit
	rec := activeOrderRecord()
	rec["reqAmount"] = "250,001"
	require.NoError(t, Verify(rec, sellLimitExpectation(), Tolerances{}))

	rec["reqAmount"] = "250,002"
	require.Error(t, Verify(rec, sellLimitExpectation(), Tolerances{}))

	rec["reqAmount"] = "250,002"
	require.NoError(t, Verify(rec, sellLimitExpectation(), Tolerances{Amount: decimal.NewFromInt(5)}))
}

func TestVerify_StatusSetMembership(t *testing.T) {
	rec := activeOrderRecord()
	rec[domain.FieldStatus] = "partially filled"

	exp := sellLimitExpectation()
	exp.Status = []string{"ACTIVE", "PARTIALLY FILLED"}
	require.NoError(t, Verify(rec, exp, Tolerances{}))

	exp.Status = []string{"FILLED"}
	err := Verify(rec, exp, Tolerances{})
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, domain.FieldStatus, mismatch.Field)
}

func TestVerify_TermSymbolInvertsSideAndCurrency(t *testing.T) {
	rec := activeOrderRecord()
	rec[domain.FieldSide] = "BUY"
	rec["reqCcy"] = "USD"
	rec["fillCcy"] = "USD"

	exp := sellLimitExpectation()
	exp.TermSymbol = true
	require.NoError(t, Verify(rec, exp, Tolerances{}))

	// same record without the term-symbol flag is a side mismatch
	exp.TermSymbol = false
	err := Verify(rec, exp, Tolerances{})
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, domain.FieldSide, mismatch.Field)
}

func TestVerify_TenorSpotAlias(t *testing.T) {
	rec := activeOrderRecord()
	rec[domain.FieldTenor] = "SP"
	require.NoError(t, Verify(rec, sellLimitExpectation(), Tolerances{}))

	rec[domain.FieldTenor] = "WEEK"
	err := Verify(rec, sellLimitExpectation(), Tolerances{})
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, domain.FieldTenor, mismatch.Field)
}

func TestVerify_OrderTypeRenderings(t *testing.T) {
	rec := activeOrderRecord()
	rec[domain.FieldOrderType] = "STOP WITH LIMIT"

	exp := sellLimitExpectation()
	exp.OrderType = "STOP_LIMIT"
	require.NoError(t, Verify(rec, exp, Tolerances{}))

	// either OCO child record is accepted
	exp.OrderType = "OCO"
	rec[domain.FieldOrderType] = "STOP WITH MARKET"
	require.NoError(t, Verify(rec, exp, Tolerances{}))
	rec[domain.FieldOrderType] = "LIMIT"
	require.NoError(t, Verify(rec, exp, Tolerances{}))

	rec[domain.FieldOrderType] = "MARKET"
	err := Verify(rec, exp, Tolerances{})
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, domain.FieldOrderType, mismatch.Field)
}

func TestVerify_AbsentFieldsAreSkipped(t *testing.T) {
	// the basic shape exposes no tif or currency fields; those rules
	// must not fire
	rec := domain.Record{
		domain.FieldStatus: "ACTIVE",
		domain.FieldSide:   "SELL",
		domain.FieldSymbol: "EUR/USD",
		"amount":           "250,000",
	}
	require.NoError(t, Verify(rec, sellLimitExpectation(), Tolerances{}))
}

func TestVerify_BlotterShapeFieldNames(t *testing.T) {
	rec := domain.Record{
		domain.FieldStatus:   "FILLED",
		domain.FieldSide:     "SELL",
		domain.FieldSymbol:   "EUR/USD",
		domain.FieldTenor:    "SP",
		domain.FieldTIF:      "IOC",
		"requestedAmount":    "250K",
		"requestedAmountCcy": "EUR",
		"username":           "QA_Demo",
	}

	exp := sellLimitExpectation()
	exp.Actor = "qa_demo"
	require.NoError(t, Verify(rec, exp, Tolerances{}))

	rec["username"] = "someone_else"
	err := Verify(rec, exp, Tolerances{})
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, "actor", mismatch.Field)
}

func TestVerify_ActorCheckSkippedWhenNotExpected(t *testing.T) {
	rec := activeOrderRecord()
	rec["username"] = "anyone"
	require.NoError(t, Verify(rec, sellLimitExpectation(), Tolerances{}))
}
