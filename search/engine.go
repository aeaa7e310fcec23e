package search

import (
	"strings"

	"fortune-dashboard/models"

	"github.com/yanun0323/errors"
)

// Engine filters an immutable base list. Results keep base order.
type Engine interface {
	Filter(query string) []models.Company
}

var ErrUnknownEngine = errors.New("search: unknown engine")

// NewEngine builds an engine over base by its config name.
func NewEngine(kind string, base []models.Company) (Engine, error) {
	switch kind {
	case "", "memory":
		return NewInMemoryEngine(base), nil
	case "bleve":
		e, err := NewBleveEngine(base)
		if err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, errors.Wrap(ErrUnknownEngine, kind)
	}
}

type InMemoryEngine struct {
	companies []models.Company
}

func NewInMemoryEngine(companies []models.Company) *InMemoryEngine {
	return &InMemoryEngine{companies: companies}
}

func (e *InMemoryEngine) Filter(query string) []models.Company {
	return Filter(e.companies, query)
}

// Filter keeps records whose name, ticker or industry contains query,
// ignoring case. An empty query keeps everything.
func Filter(companies []models.Company, query string) []models.Company {
	results := make([]models.Company, 0, len(companies))
	if query == "" {
		return append(results, companies...)
	}

	q := strings.ToLower(query)
	for _, c := range companies {
		if Matches(c, q) {
			results = append(results, c)
		}
	}
	return results
}

// Matches reports whether the already lowercased query hits c.
func Matches(c models.Company, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(c.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(c.Ticker), lowerQuery) ||
		strings.Contains(strings.ToLower(c.Industry), lowerQuery)
}
