package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"exchangerates-service/internal/application"
	"exchangerates-service/internal/domain"
	"exchangerates-service/internal/infrastructure/httpx"

	"github.com/shopspring/decimal"
)

const DefaultLatestPath = "/exchangerates_data/latest"

// FetchError describes a failed upstream call for one base code.
type FetchError struct {
	Code       string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("exchangeratesapi: fetch %s: status %d: %v", e.Code, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("exchangeratesapi: fetch %s: %v", e.Code, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is makes every FetchError match application.ErrExternalSource.
func (e *FetchError) Is(target error) bool { return target == application.ErrExternalSource }

type ExchangeRatesAPIProvider struct {
	BaseURL    string
	LatestPath string
	APIKey     string
	Client     *httpx.Client
}

var _ application.RateFetcher = (*ExchangeRatesAPIProvider)(nil)

type latestResp struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

func (p *ExchangeRatesAPIProvider) FetchRates(ctx context.Context, code string) (domain.Rates, error) {
	fail := func(err error) (domain.Rates, error) {
		fe := &FetchError{Code: code, Err: err}
		var httpErr *httpx.HTTPError
		if errors.As(err, &httpErr) {
			fe.StatusCode = httpErr.StatusCode
		}
		return nil, fe
	}
	if p.BaseURL == "" {
		return fail(errors.New("missing base url"))
	}

	u, err := p.latestURL(code)
	if err != nil {
		return fail(err)
	}
	header := http.Header{}
	if p.APIKey != "" {
		header.Set("apikey", p.APIKey)
	}

	client := p.Client
	if client == nil {
		client = &httpx.Client{}
	}
	var body latestResp
	if err := client.GetJSON(ctx, u, header, &body); err != nil {
		return fail(err)
	}
	if len(body.Rates) == 0 {
		return fail(errors.New("no rates in response"))
	}
	if body.Base != "" && !strings.EqualFold(body.Base, code) {
		return fail(fmt.Errorf("response base %s does not match %s", body.Base, code))
	}
	return domain.Rates(body.Rates), nil
}

func (p *ExchangeRatesAPIProvider) latestURL(code string) (string, error) {
	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url: %w", err)
	}
	path := p.LatestPath
	if path == "" {
		path = DefaultLatestPath
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	q := u.Query()
	q.Set("base", code)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
