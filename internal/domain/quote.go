package domain

import "math"

const (
	UnitGram     = "1 Gram"
	CurrencyTWD  = "TWD"
	SourceBOT    = "Bank of Taiwan"
	TimestampFmt = "2006-01-02 15:04:05"
)

// TimestampSource tells whether Quote.Timestamp was published by the page
// or synthesized locally at extraction time.
type TimestampSource string

const (
	TimestampFromPage TimestampSource = "page"
	TimestampLocal    TimestampSource = "local"
)

// Quote is one gold passbook reading. A nil price means the field could not
// be extracted; the rest of the record is still valid.
type Quote struct {
	Unit            string          `json:"unit"`
	Currency        string          `json:"currency"`
	SellingPrice    *float64        `json:"selling_price"`
	BuyingPrice     *float64        `json:"buying_price"`
	Timestamp       string          `json:"timestamp"`
	TimestampSource TimestampSource `json:"timestamp_source"`
	Source          string          `json:"source"`
}

// NewQuote fills the constant fields.
func NewQuote(selling, buying *float64, ts string, tsSource TimestampSource) Quote {
	return Quote{
		Unit:            UnitGram,
		Currency:        CurrencyTWD,
		SellingPrice:    selling,
		BuyingPrice:     buying,
		Timestamp:       ts,
		TimestampSource: tsSource,
		Source:          SourceBOT,
	}
}

// Price returns the price for the given side, or nil.
func (q Quote) Price(rt RateType) *float64 {
	switch rt {
	case RateSelling:
		return q.SellingPrice
	case RateBuying:
		return q.BuyingPrice
	default:
		return nil
	}
}

type Valuation struct {
	Grams      float64  `json:"grams"`
	RateType   RateType `json:"rate_type"`
	UnitPrice  float64  `json:"unit_price"`
	TotalValue float64  `json:"total_value_twd"`
	Timestamp  string   `json:"timestamp"`
}

// NewValuation prices grams at the selected side of q. grams is not range
// checked: zero and negative amounts yield proportional totals.
func NewValuation(q Quote, grams float64, rt RateType) (Valuation, error) {
	if !rt.Valid() {
		return Valuation{}, InvalidRateTypeError(string(rt))
	}
	price := q.Price(rt)
	if price == nil {
		return Valuation{}, PriceUnavailableError(rt)
	}
	return Valuation{
		Grams:      grams,
		RateType:   rt,
		UnitPrice:  *price,
		TotalValue: round2(grams * *price),
		Timestamp:  q.Timestamp,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
