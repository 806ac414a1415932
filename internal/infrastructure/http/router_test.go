package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"goldquote-service/internal/application"
	"goldquote-service/internal/domain"
	"goldquote-service/internal/tools"

	"github.com/stretchr/testify/require"
)

type stubSource struct {
	quote domain.Quote
	err   error
	calls int
}

func (s *stubSource) FetchQuote(context.Context) (domain.Quote, error) {
	s.calls++
	return s.quote, s.err
}

func f64(v float64) *float64 { return &v }

func setup(src *stubSource) http.Handler {
	svc := application.NewGoldService(src)
	return NewRouter(NewServer(svc, tools.NewRegistry(svc, nil)))
}

func goodQuote() domain.Quote {
	return domain.NewQuote(f64(2955), f64(2500), "2026/10/16 15:57", domain.TimestampFromPage)
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var e tools.ErrorResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e.Error
}

func TestHealthz(t *testing.T) {
	rec := do(setup(&stubSource{}), http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK", rec.Body.String())
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDEchoed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "rid-1")
	rec := httptest.NewRecorder()
	setup(&stubSource{}).ServeHTTP(rec, req)
	require.Equal(t, "rid-1", rec.Header().Get("X-Request-ID"))
}

func TestMetricsExposed(t *testing.T) {
	rec := do(setup(&stubSource{}), http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestGetPassbook(t *testing.T) {
	src := &stubSource{quote: goodQuote()}
	rec := do(setup(src), http.MethodGet, "/v1/gold/passbook", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var q domain.Quote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &q))
	require.Equal(t, 2955.0, *q.SellingPrice)
	require.Equal(t, domain.SourceBOT, q.Source)
	require.Equal(t, 1, src.calls)
}

func TestGetPassbook_UpstreamFailure(t *testing.T) {
	src := &stubSource{err: fmt.Errorf("%w: connection refused", domain.ErrUpstream)}
	rec := do(setup(src), http.MethodGet, "/v1/gold/passbook", "")
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Contains(t, errorOf(t, rec), "connection refused")
}

func TestGetPassbook_RowNotFound(t *testing.T) {
	rec := do(setup(&stubSource{err: domain.ErrRowNotFound}), http.MethodGet, "/v1/gold/passbook", "")
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Equal(t, "row not found", errorOf(t, rec))
}

func TestGetValue(t *testing.T) {
	rec := do(setup(&stubSource{quote: goodQuote()}), http.MethodGet, "/v1/gold/value?grams=3", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var v domain.Valuation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	require.Equal(t, domain.RateBuying, v.RateType)
	require.Equal(t, 7500.0, v.TotalValue)
}

func TestGetValue_Selling(t *testing.T) {
	rec := do(setup(&stubSource{quote: goodQuote()}), http.MethodGet, "/v1/gold/value?grams=2&rate_type=selling", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var v domain.Valuation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	require.Equal(t, 5910.0, v.TotalValue)
}

func TestGetValue_BadQuery(t *testing.T) {
	cases := []string{
		"/v1/gold/value",
		"/v1/gold/value?grams=abc",
		"/v1/gold/value?grams=1&rate_type=spot",
	}
	for _, target := range cases {
		t.Run(target, func(t *testing.T) {
			src := &stubSource{quote: goodQuote()}
			rec := do(setup(src), http.MethodGet, target, "")
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotEmpty(t, errorOf(t, rec))
			require.Zero(t, src.calls)
		})
	}
}

func TestGetValue_PriceUnavailable(t *testing.T) {
	q := domain.NewQuote(nil, f64(2500), "2026/10/16 15:57", domain.TimestampFromPage)
	rec := do(setup(&stubSource{quote: q}), http.MethodGet, "/v1/gold/value?grams=10&rate_type=selling", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, "price unavailable for selling", errorOf(t, rec))
}

func TestCallTool(t *testing.T) {
	h := setup(&stubSource{quote: goodQuote()})

	rec := do(h, http.MethodPost, "/v1/tools/"+tools.CalculateGoldValue, `{"grams": 3}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get("X-Tool-Error"))
	var v domain.Valuation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	require.Equal(t, 7500.0, v.TotalValue)

	rec = do(h, http.MethodPost, "/v1/tools/"+tools.GetGoldPassbook, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"unit": "1 Gram"`)
}

func TestCallTool_ErrorPayload(t *testing.T) {
	rec := do(setup(&stubSource{quote: goodQuote()}), http.MethodPost, "/v1/tools/"+tools.CalculateGoldValue, `{}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "true", rec.Header().Get("X-Tool-Error"))
	require.Contains(t, errorOf(t, rec), "grams is required")
}

func TestCallTool_Unknown(t *testing.T) {
	rec := do(setup(&stubSource{}), http.MethodPost, "/v1/tools/get_silver", "{}")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, errorOf(t, rec), "unknown tool")
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.InvalidRateTypeError("x"), http.StatusBadRequest},
		{fmt.Errorf("%w: timeout", domain.ErrUpstream), http.StatusBadGateway},
		{domain.ErrRowNotFound, http.StatusBadGateway},
		{domain.PriceUnavailableError(domain.RateBuying), http.StatusUnprocessableEntity},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		require.Equal(t, c.want, statusFor(c.err), c.err.Error())
	}
}
