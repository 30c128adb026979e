package parse

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestVolToAmount(t *testing.T) {
	cases := []struct {
		vol  string
		want int64
	}{
		{"1,000", 1000},
		{"1.2M", 1200000},
		{"500K", 500000},
		{"1000", 1000},
		{"250000", 250000},
		{"1,250,000", 1250000},
		{"", 0},
		{"n/a", 0},
	}
	for _, c := range cases {
		require.True(t, VolToAmount(c.vol).Equal(decimal.NewFromInt(c.want)),
			"VolToAmount(%q) = %s, want %d", c.vol, VolToAmount(c.vol), c.want)
	}

	require.True(t, VolToAmount("2.5K").Equal(decimal.NewFromInt(2500)))
}

func TestAmountToVol(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{500, "500"},
		{999, "999"},
		{1000, "1K"},
		{1500, "1.5K"},
		{1250, "1.3K"},
		{500000, "500K"},
		{1000000, "1M"},
		{1250000, "1.3M"},
		{1200000, "1.2M"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, AmountToVol(decimal.NewFromInt(c.amount)),
			"AmountToVol(%d)", c.amount)
	}
}

func TestVolAmountRoundTrip(t *testing.T) {
	// one-decimal rounding loses information, so only representative
	// values survive the round trip exactly
	for _, amount := range []int64{500, 1000, 500000, 1200000} {
		d := decimal.NewFromInt(amount)
		require.True(t, VolToAmount(AmountToVol(d)).Equal(d), "amount %d", amount)
	}
}
