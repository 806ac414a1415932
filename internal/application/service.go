package application

import (
	"context"

	"goldquote-service/internal/domain"
	"goldquote-service/internal/infrastructure/logx"

	"go.uber.org/zap"
)

// GoldService answers quote and valuation requests. It holds no state
// between calls; every request fetches a fresh quote.
type GoldService struct {
	source QuoteSource
	log    *zap.Logger
}

type Option func(*GoldService)

func WithLogger(l *zap.Logger) Option { return func(s *GoldService) { s.log = l } }

func NewGoldService(source QuoteSource, opts ...Option) *GoldService {
	s := &GoldService{source: source}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

func (s *GoldService) GetQuote(ctx context.Context) (domain.Quote, error) {
	return s.source.FetchQuote(ctx)
}

// CalculateValue prices grams of gold at the rateType side of a fresh quote.
// rateType is checked before any fetch; pass domain.DefaultRateType when the
// caller did not choose one.
func (s *GoldService) CalculateValue(ctx context.Context, grams float64, rateType domain.RateType) (domain.Valuation, error) {
	if !rateType.Valid() {
		return domain.Valuation{}, domain.InvalidRateTypeError(string(rateType))
	}
	q, err := s.source.FetchQuote(ctx)
	if err != nil {
		return domain.Valuation{}, err
	}
	v, err := domain.NewValuation(q, grams, rateType)
	if err != nil {
		logx.From(ctx, s.log).Warn("valuation.price_missing", zap.String("rate_type", string(rateType)))
		return domain.Valuation{}, err
	}
	return v, nil
}
