package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"exchangerates-service/internal/application"
	"exchangerates-service/internal/domain"
	"exchangerates-service/internal/infrastructure/http/openapi"
	"exchangerates-service/internal/infrastructure/logx"
	"exchangerates-service/internal/infrastructure/metrics"

	"go.uber.org/zap"
)

// CurrencyService is the part of the application the HTTP layer depends on.
type CurrencyService interface {
	ListKnown(ctx context.Context) []string
	GetDetails(ctx context.Context, code string) (domain.Currency, error)
	AddCurrency(ctx context.Context, code string) (domain.Currency, error)
	Ready() bool
}

var _ CurrencyService = (*application.CurrencyService)(nil)
var _ openapi.ServerInterface = (*Server)(nil)

type Server struct {
	svc     CurrencyService
	ping    func(ctx context.Context) error
	metrics *metrics.Metrics
}

func NewServer(svc CurrencyService) *Server { return &Server{svc: svc} }

// SetReadyCheck installs an extra readiness probe, typically a DB ping.
func (s *Server) SetReadyCheck(fn func(ctx context.Context) error) { s.ping = fn }

// SetMetrics enables request instrumentation and the /metrics endpoint.
func (s *Server) SetMetrics(m *metrics.Metrics) { s.metrics = m }

func (s *Server) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	codes := s.svc.ListKnown(r.Context())
	resp := make([]openapi.CurrencySummary, 0, len(codes))
	for _, c := range codes {
		resp = append(resp, openapi.CurrencySummary{Code: c})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) GetCurrency(w http.ResponseWriter, r *http.Request, code string) {
	cur, err := s.svc.GetDetails(r.Context(), code)
	if err != nil {
		s.fail(w, r, domain.NormalizeCode(code), err)
		return
	}
	writeJSON(w, http.StatusOK, toDetails(cur))
}

func (s *Server) AddCurrency(w http.ResponseWriter, r *http.Request) {
	var body openapi.AddCurrencyJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if body.CurrencyCode == "" {
		writeError(w, http.StatusBadRequest, "currency_code is required")
		return
	}
	code := domain.NormalizeCode(body.CurrencyCode)
	cur, err := s.svc.AddCurrency(r.Context(), code)
	if err != nil {
		s.fail(w, r, code, err)
		return
	}
	w.Header().Set("Location", "/api/v1.0/currencies/"+cur.Code)
	writeJSON(w, http.StatusCreated, toDetails(cur))
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, code string, err error) {
	switch {
	case errors.Is(err, application.ErrBadRequest):
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid currency code %q", code))
	case errors.Is(err, application.ErrNotFound):
		writeError(w, http.StatusNotFound, fmt.Sprintf("Currency with code %s not found", code))
	case errors.Is(err, application.ErrAlreadyExists):
		writeError(w, http.StatusConflict, fmt.Sprintf("Currency with code %s already exists", code))
	case errors.Is(err, application.ErrExternalSource):
		logx.WithFields(r.Context()).Warn("http.upstream_failed", zap.String("code", code), zap.Error(err))
		writeError(w, http.StatusBadGateway, fmt.Sprintf("Failed to fetch rates for %s", code))
	default:
		logx.WithFields(r.Context()).Error("http.internal_error", zap.String("code", code), zap.Error(err))
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

func toDetails(c domain.Currency) openapi.CurrencyDetails {
	rates := make(map[string]string, len(c.Rates))
	for k, v := range c.Rates {
		rates[k] = v.String()
	}
	return openapi.CurrencyDetails{
		Code:      c.Code,
		Rates:     rates,
		CreatedAt: c.CreatedAt.UTC(),
		UpdatedAt: c.UpdatedAt.UTC(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, openapi.Error{Code: int32(status), Message: msg})
}
