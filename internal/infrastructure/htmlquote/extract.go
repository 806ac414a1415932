package htmlquote

import (
	"math"
	"strconv"
	"strings"
	"time"

	"goldquote-service/internal/domain"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	// RowLabel marks the gold passbook row on the page.
	RowLabel = "Gold Passbook"
	// TimeSelector locates the published quote time.
	TimeSelector = "span.time"

	roleAttr = "data-table"
)

// Strategy names how the prices were located.
type Strategy string

const (
	StrategyAttributes Strategy = "attributes"
	StrategyPositional Strategy = "positional"
	StrategyNone       Strategy = "none"
)

// Result is the outcome of a successful extraction.
type Result struct {
	Quote    domain.Quote
	Strategy Strategy
	Cells    int
}

// CellPrices holds the raw normalized price texts of a row.
type CellPrices struct {
	Selling string
	Buying  string
}

func (p CellPrices) complete() bool { return p.Selling != "" && p.Buying != "" }

// Extract builds a Quote from doc. The only error is domain.ErrRowNotFound;
// prices that cannot be read are left nil. now supplies the fallback
// timestamp when the page does not publish one.
func Extract(doc *Document, now func() time.Time) (Result, error) {
	row := LocateRow(doc.FindFirstTextContaining(RowLabel))
	if row == nil {
		return Result{}, domain.ErrRowNotFound
	}
	cells := RowCells(row)

	prices, strategy := resolvePrices(cells)

	ts, tsSource := quoteTime(doc, now)
	q := domain.NewQuote(ParsePrice(prices.Selling), ParsePrice(prices.Buying), ts, tsSource)
	return Result{Quote: q, Strategy: strategy, Cells: cells.Length()}, nil
}

// RowCells returns the data cells under row in document order.
func RowCells(row *html.Node) *goquery.Selection {
	return goquery.NewDocumentFromNode(row).Find("td")
}

func resolvePrices(cells *goquery.Selection) (CellPrices, Strategy) {
	prices := AttributePrices(cells)
	if prices.complete() {
		return prices, StrategyAttributes
	}
	if pos, ok := PositionalPrices(cells); ok {
		return pos, StrategyPositional
	}
	if prices.Selling != "" || prices.Buying != "" {
		return prices, StrategyAttributes
	}
	return prices, StrategyNone
}

// AttributePrices reads prices from cells whose data-table attribute names
// their role. A role claimed by more than one cell stays unresolved.
func AttributePrices(cells *goquery.Selection) CellPrices {
	var out CellPrices
	var selling, buying int
	cells.Each(func(_ int, cell *goquery.Selection) {
		role := strings.ToLower(strings.TrimSpace(cell.AttrOr(roleAttr, "")))
		switch {
		case strings.Contains(role, "selling"):
			selling++
			out.Selling = normalize(strippedText(cell))
		case strings.Contains(role, "buying"):
			buying++
			out.Buying = normalize(strippedText(cell))
		}
	})
	if selling != 1 {
		out.Selling = ""
	}
	if buying != 1 {
		out.Buying = ""
	}
	return out
}

// PositionalPrices assumes the layout [label, selling, buying]. This is a
// heuristic about the upstream page, not a contract.
func PositionalPrices(cells *goquery.Selection) (CellPrices, bool) {
	if cells.Length() < 3 {
		return CellPrices{}, false
	}
	return CellPrices{
		Selling: normalize(strippedText(cells.Eq(1))),
		Buying:  normalize(strippedText(cells.Eq(2))),
	}, true
}

func normalize(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
}

// ParsePrice converts price text such as "2,550.5" to a positive number.
// Anything else yields nil.
func ParsePrice(s string) *float64 {
	s = normalize(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return nil
	}
	return &v
}

func quoteTime(doc *Document, now func() time.Time) (string, domain.TimestampSource) {
	if ts := strings.TrimSpace(doc.Selection().Find(TimeSelector).First().Text()); ts != "" {
		return ts, domain.TimestampFromPage
	}
	if now == nil {
		now = time.Now
	}
	return now().Format(domain.TimestampFmt), domain.TimestampLocal
}
