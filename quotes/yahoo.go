package quotes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"fortune-dashboard/models"

	"github.com/yanun0323/errors"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

var (
	ErrInvalidCrumb = errors.New("yahoo: invalid crumb")
	ErrBadStatus    = errors.New("yahoo: unexpected status")
)

// YahooProvider talks to the Yahoo Finance quote endpoint directly: one
// cookie request, one crumb request and one batched quote request.
type YahooProvider struct {
	HomeURL  string
	QueryURL string
	client   *http.Client
}

func NewYahooProvider(timeout time.Duration) *YahooProvider {
	jar, _ := cookiejar.New(nil)
	return &YahooProvider{
		HomeURL:  "https://finance.yahoo.com",
		QueryURL: "https://query1.finance.yahoo.com",
		client: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
	}
}

func (p *YahooProvider) Name() string { return "yahoo" }

type yahooQuoteResponse struct {
	QuoteResponse struct {
		Result []models.Quote `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteResponse"`
}

func (p *YahooProvider) Quotes(ctx context.Context, symbols []string) ([]models.Quote, error) {
	if len(symbols) == 0 {
		return nil, nil
	}

	crumb, err := p.crumb(ctx)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("symbols", strings.Join(symbols, ","))
	q.Set("fields", "symbol,marketCap,regularMarketChangePercent")
	q.Set("crumb", crumb)

	resp, err := p.get(ctx, p.QueryURL+"/v7/finance/quote?"+q.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "fetch quotes")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrap(ErrBadStatus, resp.Status)
	}

	var body yahooQuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "decode quotes")
	}
	if e := body.QuoteResponse.Error; e != nil {
		return nil, errors.Errorf("yahoo quote error %s: %s", e.Code, e.Description)
	}
	return body.QuoteResponse.Result, nil
}

func (p *YahooProvider) crumb(ctx context.Context) (string, error) {
	// 1. Cookie from main page
	resp, err := p.get(ctx, p.HomeURL, map[string]string{
		"Accept": "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	})
	if err != nil {
		return "", errors.Wrap(err, "fetch cookie")
	}
	resp.Body.Close()

	// 2. Crumb
	resp, err = p.get(ctx, p.QueryURL+"/v1/test/getcrumb", map[string]string{
		"Origin":  p.HomeURL,
		"Referer": p.HomeURL + "/",
	})
	if err != nil {
		return "", errors.Wrap(err, "fetch crumb")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read crumb")
	}
	crumb := strings.TrimSpace(string(body))
	if crumb == "" || strings.Contains(crumb, "html") {
		return "", ErrInvalidCrumb
	}
	return crumb, nil
}

func (p *YahooProvider) get(ctx context.Context, u string, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return p.client.Do(req)
}
