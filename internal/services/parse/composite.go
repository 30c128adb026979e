package parse

import (
	"regexp"
	"strings"

	"github.com/hptabster/EWM-qa-demo/internal/domain"
)

// Blocks holds the text blocks of one rendered order-list item. Which
// blocks are populated depends on the layout: the basic layout renders
// everything in Body, the expanded layout splits the item into head,
// status, body, footer and id blocks.
type Blocks struct {
	Head   string
	Status string
	Body   string
	Footer string
	ID     string
}

// ParseComposite converts the blocks of one list item into a Record,
// dispatching on the layout tag. A nil record means the item is not yet
// fully rendered; callers treat that as a transient miss and poll
// again, never as an error.
func ParseComposite(b Blocks, layout domain.ViewLayout) domain.Record {
	switch layout {
	case domain.LayoutExpanded:
		return parseExpanded(b)
	default:
		return parseBasic(b)
	}
}

// amountStart locates the first " <digit>" in the status line of a
// basic item, where the amount/rate tail begins.
var amountStart = regexp.MustCompile(` \d`)

// parseBasic reads the compact three-line item body:
//
//	<symbol> <tenor> <side> <order type...>
//	<status>[ <amount>@<rate> | <amount>/<rate>]
//	<trade id>
func parseBasic(b Blocks) domain.Record {
	if b.Body == "" {
		return nil
	}
	lines := strings.Split(b.Body, "\n")
	if len(lines) < 3 {
		return nil
	}

	head := strings.Split(lines[0], " ")
	if len(head) < 3 {
		return nil
	}

	rec := domain.Record{
		domain.FieldView:      domain.LayoutBasic.String(),
		domain.FieldSymbol:    head[0],
		domain.FieldTenor:     head[1],
		domain.FieldSide:      head[2],
		domain.FieldOrderType: strings.Join(head[3:], " "),
		domain.FieldTradeID:   lines[2],
	}

	status := strings.Split(lines[1], " ")[0]
	if loc := amountStart.FindStringIndex(lines[1]); loc != nil {
		status = lines[1][:loc[0]]
		tail := lines[1][loc[0]:]
		sep := "/"
		if strings.Contains(tail, "@") {
			sep = "@"
		}
		parts := strings.SplitN(tail, sep, 2)
		rec["amount"] = strings.TrimSpace(parts[0])
		if len(parts) > 1 {
			rec["rate"] = strings.TrimSpace(parts[1])
		}
	}
	rec[domain.FieldStatus] = status

	return rec
}

// parseExpanded reads the multi-block item of the expanded layout. The
// head line carries "<symbol over three tokens> <tenor...> <side>", the
// body fixed positions for requested and filled "<amount> <ccy>@<rate>"
// lines and the submission time, the footer "<order type...> <tif>".
func parseExpanded(b Blocks) domain.Record {
	if b.Head == "" || b.Status == "" || b.Body == "" || b.Footer == "" {
		return nil
	}

	head := strings.Split(strings.Split(b.Head, "\n")[0], " ")
	if len(head) < 4 {
		return nil
	}

	body := strings.Split(b.Body, "\n")
	if len(body) < 8 {
		return nil
	}

	rec := domain.Record{
		domain.FieldView:   domain.LayoutExpanded.String(),
		domain.FieldStatus: b.Status,
		domain.FieldSymbol: strings.Join(head[:3], " "),
		domain.FieldTenor:  strings.Join(head[3:len(head)-1], " "),
		domain.FieldSide:   head[len(head)-1],
	}

	req := strings.Split(body[3], " ")
	rec["reqAmount"] = req[0]
	if len(req) > 1 {
		ccyRate := strings.SplitN(req[1], "@", 2)
		rec["reqCcy"] = ccyRate[0]
		if len(ccyRate) > 1 {
			rec["reqRate"] = ccyRate[1]
		}
	}

	fill := strings.Split(body[4], " ")
	rec["fillAmount"] = fill[0]
	if len(fill) > 1 {
		ccyRate := strings.SplitN(fill[1], "@", 2)
		rec["fillCcy"] = ccyRate[0]
		if len(ccyRate) > 1 {
			rec["fillRate"] = ccyRate[1]
		}
	}

	rec["reqTime"] = body[7]
	rec["fillTime"] = body[7]

	footer := strings.Split(b.Footer, " ")
	rec[domain.FieldOrderType] = strings.Join(footer[:len(footer)-1], " ")
	rec[domain.FieldTIF] = footer[len(footer)-1]
	rec[domain.FieldTradeID] = b.ID

	return rec
}
