package provider

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"goldquote-service/internal/application"
	"goldquote-service/internal/domain"
	"goldquote-service/internal/infrastructure/htmlquote"
	"goldquote-service/internal/infrastructure/logx"
	"goldquote-service/internal/infrastructure/metrics"

	"go.uber.org/zap"
)

// BankOfTaiwanGoldURL is the only page this provider reads.
const BankOfTaiwanGoldURL = "https://rate.bot.com.tw/gold?Lang=en-US"

// PageGetter is satisfied by *httpx.Client.
type PageGetter interface {
	GetPage(ctx context.Context, url string) ([]byte, error)
}

type BankOfTaiwanProvider struct {
	Client PageGetter
	Log    *zap.Logger
	// Now stamps quotes when the page carries no quote time.
	Now func() time.Time
}

var _ application.QuoteSource = (*BankOfTaiwanProvider)(nil)

func (p *BankOfTaiwanProvider) FetchQuote(ctx context.Context) (domain.Quote, error) {
	if p.Client == nil {
		return domain.Quote{}, fmt.Errorf("bot_gold: missing http client")
	}
	log := logx.From(ctx, p.Log)

	started := time.Now()
	body, err := p.Client.GetPage(ctx, BankOfTaiwanGoldURL)
	metrics.ObserveFetch(started, err)
	if err != nil {
		log.Warn("bot_gold.fetch_failed", zap.Error(err), zap.Duration("elapsed", time.Since(started)))
		return domain.Quote{}, fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}

	doc, err := htmlquote.Parse(bytes.NewReader(body))
	if err != nil {
		return domain.Quote{}, fmt.Errorf("bot_gold: parse page: %w", err)
	}
	res, err := htmlquote.Extract(doc, p.Now)
	if err != nil {
		metrics.ExtractFailuresTotal.WithLabelValues("row_not_found").Inc()
		log.Warn("bot_gold.row_not_found", zap.Int("bytes", len(body)), zap.String("label", htmlquote.RowLabel))
		return domain.Quote{}, err
	}

	q := res.Quote
	if res.Strategy == htmlquote.StrategyPositional {
		metrics.ExtractFallbackTotal.Inc()
		log.Warn("extract.positional_fallback", zap.Int("cells", res.Cells))
	}
	if q.SellingPrice == nil {
		metrics.ExtractFailuresTotal.WithLabelValues("selling_unreadable").Inc()
		log.Warn("extract.price_missing", zap.String("side", string(domain.RateSelling)), zap.String("strategy", string(res.Strategy)))
	}
	if q.BuyingPrice == nil {
		metrics.ExtractFailuresTotal.WithLabelValues("buying_unreadable").Inc()
		log.Warn("extract.price_missing", zap.String("side", string(domain.RateBuying)), zap.String("strategy", string(res.Strategy)))
	}
	if q.TimestampSource == domain.TimestampLocal {
		log.Info("extract.local_timestamp", zap.String("timestamp", q.Timestamp))
	}
	log.Debug("bot_gold.success", zap.String("strategy", string(res.Strategy)), zap.String("timestamp", q.Timestamp))
	return q, nil
}
