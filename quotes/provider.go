package quotes

import (
	"context"
	"sync/atomic"
	"time"

	"fortune-dashboard/models"

	"github.com/yanun0323/errors"
)

// Provider performs one batched quote lookup. Symbols the upstream does not
// know are absent from the result; that is not an error.
type Provider interface {
	Name() string
	Quotes(ctx context.Context, symbols []string) ([]models.Quote, error)
}

var ErrUnknownProvider = errors.New("quotes: unknown provider")

// NewProvider builds a provider by its config name.
func NewProvider(name string, timeout time.Duration) (Provider, error) {
	switch name {
	case "", "yahoo":
		return NewYahooProvider(timeout), nil
	case "financego":
		return NewFinanceGoProvider(), nil
	case "static":
		return NewStaticProvider(nil, nil), nil
	default:
		return nil, errors.Wrap(ErrUnknownProvider, name)
	}
}

// StaticProvider answers from a fixed list, or fails with a fixed error.
type StaticProvider struct {
	quotes []models.Quote
	err    error
	calls  atomic.Int64
}

func NewStaticProvider(quotes []models.Quote, err error) *StaticProvider {
	return &StaticProvider{quotes: quotes, err: err}
}

func (p *StaticProvider) Name() string { return "static" }

func (p *StaticProvider) Quotes(ctx context.Context, symbols []string) ([]models.Quote, error) {
	p.calls.Add(1)
	if p.err != nil {
		return nil, p.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	want := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		want[s] = struct{}{}
	}
	var out []models.Quote
	for _, q := range p.quotes {
		if _, ok := want[q.Symbol]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

// Calls reports how many lookups were made.
func (p *StaticProvider) Calls() int64 {
	return p.calls.Load()
}

// Float is a helper for building quotes with present fields.
func Float(v float64) *float64 {
	return &v
}
