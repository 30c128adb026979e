package parse

import (
	"strings"

	"github.com/hptabster/EWM-qa-demo/internal/domain"
)

// Tier field prefixes for the two sides of the depth ladder. A tier is
// keyed by side-prefixed field name rather than an identifier.
const (
	TierBuyPrefix  = "BUY_"
	TierSellPrefix = "SELL_"
)

// ParseTopTiers builds one record per price level of the TOP view
// ladder. The header block lists the bid columns followed by the offer
// columns; the bid and offer blocks render their cells line by line,
// one group of header-width lines per level. Bid cells land under
// SELL_-prefixed keys and offer cells under BUY_-prefixed keys, since
// hitting a bid sells and lifting an offer buys.
func ParseTopTiers(headerText, bidText, offerText string) []domain.Record {
	header := splitLines(headerText)
	if len(header) == 0 || len(header)%2 != 0 {
		return nil
	}
	half := len(header) / 2

	bids := splitLines(bidText)
	offers := splitLines(offerText)

	var tiers []domain.Record
	for idx := 0; idx < len(bids); idx += half {
		tier := make(domain.Record, len(header))
		fillTier(tier, TierSellPrefix, header[:half], bids, idx)
		fillTier(tier, TierBuyPrefix, header[half:], offers, idx)
		tiers = append(tiers, tier)
	}
	return tiers
}

// ParseVwapTiers parses the VWAP view table: a tab-separated header
// line followed by one tab-separated line per level.
func ParseVwapTiers(text string) []domain.Record {
	lines := splitLines(text)
	if len(lines) < 2 {
		return nil
	}

	header := strings.Split(lines[0], "\t")
	tiers := make([]domain.Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		cells := strings.Split(line, "\t")
		tier := make(domain.Record, len(header))
		for i, name := range header {
			if i < len(cells) {
				tier[name] = cells[i]
			} else {
				tier[name] = ""
			}
		}
		tiers = append(tiers, tier)
	}
	return tiers
}

func fillTier(tier domain.Record, prefix string, header []string, cells []string, offset int) {
	for i, name := range header {
		v := ""
		if offset+i < len(cells) {
			v = cells[offset+i]
		}
		tier[prefix+name] = v
	}
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
