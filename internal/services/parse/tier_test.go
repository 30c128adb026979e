package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTopTiers(t *testing.T) {
	header := strings.Join([]string{"VOL", "PRICE", "PRICE", "VOL"}, "\n")
	bids := strings.Join([]string{
		"1M", "1.08450",
		"2M", "1.08440",
	}, "\n")
	offers := strings.Join([]string{
		"1M", "1.08460",
		"3M", "1.08470",
	}, "\n")

	tiers := ParseTopTiers(header, bids, offers)
	require.Len(t, tiers, 2)

	require.Equal(t, "1M", tiers[0]["SELL_VOL"])
	require.Equal(t, "1.08450", tiers[0]["SELL_PRICE"])
	require.Equal(t, "1M", tiers[0]["BUY_VOL"])
	require.Equal(t, "1.08460", tiers[0]["BUY_PRICE"])

	require.Equal(t, "2M", tiers[1]["SELL_VOL"])
	require.Equal(t, "3M", tiers[1]["BUY_VOL"])
	require.Equal(t, "1.08470", tiers[1]["BUY_PRICE"])
}

func TestParseTopTiers_ShortOfferBlock(t *testing.T) {
	tiers := ParseTopTiers("VOL\nPRICE\nPRICE\nVOL", "1M\n1.08450", "")
	require.Len(t, tiers, 1)
	require.Equal(t, "1M", tiers[0]["SELL_VOL"])
	require.Equal(t, "", tiers[0]["BUY_VOL"])
}

func TestParseTopTiers_NotRendered(t *testing.T) {
	require.Nil(t, ParseTopTiers("", "1M", "1M"))
	require.Nil(t, ParseTopTiers("VOL\nPRICE\nVOL", "1M", "1M"))
}

func TestParseVwapTiers(t *testing.T) {
	text := strings.Join([]string{
		"VOL\tBID\tOFFER",
		"1M\t1.08450\t1.08460",
		"5M\t1.08440\t1.08470",
	}, "\n")

	tiers := ParseVwapTiers(text)
	require.Len(t, tiers, 2)
	require.Equal(t, "1M", tiers[0]["VOL"])
	require.Equal(t, "1.08470", tiers[1]["OFFER"])

	require.Nil(t, ParseVwapTiers("VOL\tBID"))
	require.Nil(t, ParseVwapTiers(""))
}
