package application

import (
	"context"

	"goldquote-service/internal/domain"
)

//go:generate mockgen -package=application -destination=mock_ports_test.go -source=ports.go QuoteSource

// QuoteSource produces a freshly fetched gold passbook quote on every call.
type QuoteSource interface {
	FetchQuote(ctx context.Context) (domain.Quote, error)
}
