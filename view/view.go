package view

import (
	"net/url"
	"sort"

	"fortune-dashboard/models"
	"fortune-dashboard/search"
)

type SortKey string

const (
	SortRank      SortKey = "rank"
	SortName      SortKey = "name"
	SortTicker    SortKey = "ticker"
	SortIndustry  SortKey = "industry"
	SortRevenue   SortKey = "revenue"
	SortMarketCap SortKey = "marketCap"
	SortEmployees SortKey = "employees"
	SortChange    SortKey = "change"
)

// Valid reports whether k names a sortable column.
func (k SortKey) Valid() bool {
	_, ok := comparators[k]
	return ok
}

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

type SortSpec struct {
	Key       SortKey
	Direction Direction
}

// State is the transient UI state the projection is derived from.
// A nil Sort means base order.
type State struct {
	Query string
	Sort  *SortSpec
}

// Toggle returns the state after clicking the header for key: a second click
// on a descending column flips it to ascending, every other click starts at
// descending.
func (s State) Toggle(key SortKey) State {
	dir := Desc
	if s.Sort != nil && s.Sort.Key == key && s.Sort.Direction == Desc {
		dir = Asc
	}
	s.Sort = &SortSpec{Key: key, Direction: dir}
	return s
}

// SortedBy reports the direction key is currently sorted in, if any.
func (s State) SortedBy(key SortKey) (Direction, bool) {
	if s.Sort == nil || s.Sort.Key != key {
		return "", false
	}
	return s.Sort.Direction, true
}

// ParseState reads q, sort and dir. Unknown keys leave the list unsorted and
// any direction other than asc is descending.
func ParseState(v url.Values) State {
	s := State{Query: v.Get("q")}
	key := SortKey(v.Get("sort"))
	if key.Valid() {
		dir := Desc
		if Direction(v.Get("dir")) == Asc {
			dir = Asc
		}
		s.Sort = &SortSpec{Key: key, Direction: dir}
	}
	return s
}

// Values is the inverse of ParseState.
func (s State) Values() url.Values {
	v := url.Values{}
	if s.Query != "" {
		v.Set("q", s.Query)
	}
	if s.Sort != nil {
		v.Set("sort", string(s.Sort.Key))
		v.Set("dir", string(s.Sort.Direction))
	}
	return v
}

var comparators = map[SortKey]func(a, b models.Company) int{
	SortRank:      func(a, b models.Company) int { return cmpOrdered(a.Rank, b.Rank) },
	SortName:      func(a, b models.Company) int { return cmpOrdered(a.Name, b.Name) },
	SortTicker:    func(a, b models.Company) int { return cmpOrdered(a.Ticker, b.Ticker) },
	SortIndustry:  func(a, b models.Company) int { return cmpOrdered(a.Industry, b.Industry) },
	SortRevenue:   func(a, b models.Company) int { return cmpOrdered(a.Revenue, b.Revenue) },
	SortMarketCap: func(a, b models.Company) int { return cmpOrdered(a.MarketCap, b.MarketCap) },
	SortEmployees: func(a, b models.Company) int { return cmpOrdered(a.Employees, b.Employees) },
	SortChange:    func(a, b models.Company) int { return cmpOrdered(a.Change, b.Change) },
}

func cmpOrdered[T int | float64 | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Project filters base by the query, then orders the result by the sort key.
// base is never modified.
func Project(base []models.Company, s State) []models.Company {
	return sortCompanies(search.Filter(base, s.Query), s.Sort)
}

func sortCompanies(cs []models.Company, spec *SortSpec) []models.Company {
	if spec == nil {
		return cs
	}
	cmp, ok := comparators[spec.Key]
	if !ok {
		return cs
	}
	sign := 1
	if spec.Direction == Desc {
		sign = -1
	}
	sort.SliceStable(cs, func(i, j int) bool {
		return sign*cmp(cs[i], cs[j]) < 0
	})
	return cs
}

// Model binds one page load's dataset to a search engine.
type Model struct {
	base   []models.Company
	engine search.Engine
}

func NewModel(base []models.Company, engine search.Engine) *Model {
	if engine == nil {
		engine = search.NewInMemoryEngine(base)
	}
	return &Model{base: base, engine: engine}
}

// Base is the merged dataset in rank order.
func (m *Model) Base() []models.Company {
	return m.base
}

func (m *Model) Project(s State) []models.Company {
	return sortCompanies(m.engine.Filter(s.Query), s.Sort)
}
