package domain

import "strings"

// RateType selects which side of the quote a valuation uses.
type RateType string

const (
	// RateBuying is the price the bank pays when buying gold from the customer.
	RateBuying RateType = "buying"
	// RateSelling is the price the bank charges when selling gold to the customer.
	RateSelling RateType = "selling"

	DefaultRateType = RateBuying
)

func (r RateType) Valid() bool {
	return r == RateBuying || r == RateSelling
}

// ParseRateType maps user input to a RateType. Empty input selects
// DefaultRateType.
func ParseRateType(s string) (RateType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultRateType, nil
	}
	rt := RateType(s)
	if !rt.Valid() {
		return "", InvalidRateTypeError(s)
	}
	return rt, nil
}
