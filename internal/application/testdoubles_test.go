package application

import (
	"context"
	"errors"
	"sync/atomic"

	"goldquote-service/internal/domain"
)

var (
	ErrSource = errors.New("source error")
)

type fakeQuoteSource struct {
	quote domain.Quote
	err   error
	calls atomic.Int32
}

func (f *fakeQuoteSource) FetchQuote(_ context.Context) (domain.Quote, error) {
	f.calls.Add(1)
	if f.err != nil {
		return domain.Quote{}, f.err
	}
	return f.quote, nil
}

func f64(v float64) *float64 { return &v }
