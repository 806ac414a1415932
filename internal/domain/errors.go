package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUpstream         = errors.New("upstream unavailable")
	ErrRowNotFound      = errors.New("row not found")
	ErrPriceUnavailable = errors.New("price unavailable")
	ErrInvalidRateType  = errors.New("invalid rate type")
)

func PriceUnavailableError(rt RateType) error {
	return fmt.Errorf("%w for %s", ErrPriceUnavailable, rt)
}

func InvalidRateTypeError(got string) error {
	return fmt.Errorf("%w %q: want %q or %q", ErrInvalidRateType, got, RateBuying, RateSelling)
}
