package models

// Company is one row of the dashboard: seed fields joined with the live quote.
type Company struct {
	Rank      int     `json:"rank"`
	Name      string  `json:"name"`
	Ticker    string  `json:"ticker"`
	Industry  string  `json:"industry"`
	Revenue   float64 `json:"revenue"`   // currency units, from seed
	MarketCap float64 `json:"marketCap"` // 0 when no quote
	Employees int     `json:"employees"`
	Website   string  `json:"website"` // domain, no scheme
	Change    float64 `json:"change"`  // percent, signed; 0 when no quote
}

// Seed is a checked-in baseline record keyed by ticker.
type Seed struct {
	Ticker    string  `json:"ticker"`
	Name      string  `json:"name"`
	Industry  string  `json:"industry"`
	Employees int     `json:"employees"`
	Website   string  `json:"website"`
	Revenue   float64 `json:"revenue"`
}

// Quote is the subset of a market quote the dashboard consumes.
// Nil fields were missing or null in the provider response.
type Quote struct {
	Symbol                     string   `json:"symbol"`
	MarketCap                  *float64 `json:"marketCap,omitempty"`
	RegularMarketChangePercent *float64 `json:"regularMarketChangePercent,omitempty"`
}
