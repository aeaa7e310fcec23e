package quotes

import (
	"context"

	"fortune-dashboard/models"

	"github.com/piquette/finance-go/equity"
	"github.com/yanun0323/errors"
)

// FinanceGoProvider uses piquette/finance-go, which issues a single
// multi-symbol request per List call.
type FinanceGoProvider struct {
	list func(symbols []string) ([]models.Quote, error)
}

func NewFinanceGoProvider() *FinanceGoProvider {
	return &FinanceGoProvider{list: listEquities}
}

func (p *FinanceGoProvider) Name() string { return "financego" }

func (p *FinanceGoProvider) Quotes(ctx context.Context, symbols []string) ([]models.Quote, error) {
	if len(symbols) == 0 {
		return nil, nil
	}

	type result struct {
		quotes []models.Quote
		err    error
	}
	// finance-go has no context support; abandon the call on cancellation.
	done := make(chan result, 1)
	go func() {
		q, err := p.list(symbols)
		done <- result{q, err}
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "finance-go quote list")
	case r := <-done:
		return r.quotes, r.err
	}
}

func listEquities(symbols []string) ([]models.Quote, error) {
	iter := equity.List(symbols)

	var out []models.Quote
	for iter.Next() {
		e := iter.Equity()
		if e == nil {
			continue
		}
		out = append(out, models.Quote{
			Symbol:                     e.Symbol,
			MarketCap:                  Float(float64(e.MarketCap)),
			RegularMarketChangePercent: Float(e.RegularMarketChangePercent),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "finance-go quote list")
	}
	return out, nil
}
