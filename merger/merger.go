package merger

import (
	"context"

	"fortune-dashboard/loader"
	"fortune-dashboard/models"
	"fortune-dashboard/quotes"

	"github.com/yanun0323/logs"
)

// IndexQuotes keys quotes by exact symbol. Later duplicates win.
func IndexQuotes(qs []models.Quote) map[string]models.Quote {
	m := make(map[string]models.Quote, len(qs))
	for _, q := range qs {
		m[q.Symbol] = q
	}
	return m
}

// Merge joins seeds with quotes by ticker, keeping seed order and assigning
// rank = index + 1. A nil lookup yields the all-zero projection.
func Merge(seeds []models.Seed, lookup map[string]models.Quote) []models.Company {
	out := make([]models.Company, len(seeds))
	for i, s := range seeds {
		c := models.Company{
			Rank:      i + 1,
			Name:      s.Name,
			Ticker:    s.Ticker,
			Industry:  s.Industry,
			Revenue:   s.Revenue,
			Employees: s.Employees,
			Website:   s.Website,
		}
		if q, ok := lookup[s.Ticker]; ok {
			c.MarketCap = value(q.MarketCap)
			c.Change = value(q.RegularMarketChangePercent)
		}
		out[i] = c
	}
	return out
}

// Symbols lists the tickers worth asking a provider for, in seed order.
func Symbols(seeds []models.Seed) []string {
	out := make([]string, 0, len(seeds))
	for _, s := range seeds {
		if s.Ticker == "" || s.Ticker == loader.UnknownTicker {
			continue
		}
		out = append(out, s.Ticker)
	}
	return out
}

// Build fetches all quotes in one call and merges them. A failed fetch is
// logged and degrades to zero market cap and change on every record.
func Build(ctx context.Context, seeds []models.Seed, provider quotes.Provider) []models.Company {
	symbols := Symbols(seeds)
	if len(symbols) == 0 {
		return Merge(seeds, nil)
	}

	qs, err := provider.Quotes(ctx, symbols)
	if err != nil {
		logs.Errorf("fetch %d quotes from %s, falling back to seed data, err: %+v", len(symbols), provider.Name(), err)
		return Merge(seeds, nil)
	}

	logs.Infof("fetched %d/%d quotes from %s", len(qs), len(symbols), provider.Name())
	return Merge(seeds, IndexQuotes(qs))
}

func value(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
