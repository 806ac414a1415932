package application

import (
	"errors"

	"goldquote-service/internal/domain"
)

// Kind classifies an error for the transport layers.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUpstream
	KindExtraction
	KindUnavailable
)

// Classify maps service errors onto a Kind.
func Classify(err error) Kind {
	switch {
	case errors.Is(err, domain.ErrInvalidRateType):
		return KindValidation
	case errors.Is(err, domain.ErrUpstream):
		return KindUpstream
	case errors.Is(err, domain.ErrRowNotFound):
		return KindExtraction
	case errors.Is(err, domain.ErrPriceUnavailable):
		return KindUnavailable
	default:
		return KindInternal
	}
}
