package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"goldquote-service/internal/application"
	"goldquote-service/internal/domain"
	"goldquote-service/internal/infrastructure/logx"
	"goldquote-service/internal/tools"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"go.uber.org/zap"
)

const maxToolArgsBytes = 64 << 10

type Server struct {
	svc tools.GoldService
	reg *tools.Registry
}

func NewServer(svc tools.GoldService, reg *tools.Registry) *Server {
	return &Server{svc: svc, reg: reg}
}

// GetValueParams are the query parameters of GET /v1/gold/value.
type GetValueParams struct {
	Grams    float64
	RateType *string
}

func (s *Server) GetPassbook(w http.ResponseWriter, r *http.Request) {
	q, err := s.svc.GetQuote(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (s *Server) GetValue(w http.ResponseWriter, r *http.Request) {
	var params GetValueParams
	if err := runtime.BindQueryParameter("form", true, true, "grams", r.URL.Query(), &params.Grams); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "rate_type", r.URL.Query(), &params.RateType); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var raw string
	if params.RateType != nil {
		raw = *params.RateType
	}
	rt, err := domain.ParseRateType(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	v, err := s.svc.CalculateValue(r.Context(), params.Grams, rt)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// CallTool runs a registered tool with the request body as its arguments and
// replies with the tool's text payload.
func (s *Server) CallTool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	body, err := io.ReadAll(io.LimitReader(r.Body, maxToolArgsBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read body")
		return
	}
	resp, err := s.reg.Call(r.Context(), name, body)
	if err != nil {
		if errors.Is(err, tools.ErrUnknownTool) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	if json.Valid([]byte(resp.Text)) {
		w.Header().Set("Content-Type", "application/json")
	} else {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	if resp.IsError {
		w.Header().Set("X-Tool-Error", "true")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, resp.Text)
}

// statusFor maps a service error onto an HTTP status.
func statusFor(err error) int {
	switch application.Classify(err) {
	case application.KindValidation:
		return http.StatusBadRequest
	case application.KindUpstream, application.KindExtraction:
		return http.StatusBadGateway
	case application.KindUnavailable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	logx.WithFields(r.Context()).Warn("http.service_error", zap.Int("status", status), zap.Error(err))
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	writeError(w, status, msg)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, tools.ErrorResult{Error: msg})
}
