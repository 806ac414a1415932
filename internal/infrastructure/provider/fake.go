package provider

import (
	"context"
	"time"

	"goldquote-service/internal/application"
	"goldquote-service/internal/domain"
)

// Ensure Fake implements application.QuoteSource.
var _ application.QuoteSource = (*Fake)(nil)

type Fake struct {
	selling float64
	buying  float64
}

func NewFake(selling, buying float64) *Fake { return &Fake{selling: selling, buying: buying} }

func (f *Fake) FetchQuote(_ context.Context) (domain.Quote, error) {
	selling, buying := f.selling, f.buying
	return domain.NewQuote(&selling, &buying, time.Now().Format(domain.TimestampFmt), domain.TimestampLocal), nil
}
