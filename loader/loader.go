package loader

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"fortune-dashboard/models"

	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"
)

const (
	// MaxSeeds caps the dashboard at the top 100 by revenue.
	MaxSeeds = 100

	// UnknownTicker marks companies without a listed ticker. It is exempt from
	// the uniqueness check and never sent to a quote provider.
	UnknownTicker = "N/A"
)

var (
	ErrEmptyTicker     = errors.New("loader: seed with empty ticker")
	ErrDuplicateTicker = errors.New("loader: duplicate ticker")
)

var millions = decimal.New(1, 6)

func LoadSeeds(filePath string) ([]models.Seed, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "open seed file")
	}
	defer f.Close()

	return ParseSeeds(f)
}

// ParseSeeds decodes a seed list and keeps at most MaxSeeds entries in file order.
func ParseSeeds(r io.Reader) ([]models.Seed, error) {
	var seeds []models.Seed
	if err := json.NewDecoder(r).Decode(&seeds); err != nil {
		return nil, errors.Wrap(err, "decode seed file")
	}

	if len(seeds) > MaxSeeds {
		seeds = seeds[:MaxSeeds]
	}

	seen := make(map[string]struct{}, len(seeds))
	for i, s := range seeds {
		if s.Ticker == "" {
			return nil, errors.Wrap(ErrEmptyTicker, "entry "+strconv.Itoa(i))
		}
		if s.Ticker == UnknownTicker {
			continue
		}
		if _, ok := seen[s.Ticker]; ok {
			return nil, errors.Wrap(ErrDuplicateTicker, s.Ticker)
		}
		seen[s.Ticker] = struct{}{}
	}

	return seeds, nil
}

// FortuneRecord is one entry of the third-party Fortune 500 JSON list.
// Revenue is in millions; employees is comma-formatted text.
type FortuneRecord struct {
	Company   string      `json:"company"`
	Ticker    string      `json:"ticker"`
	Sector    string      `json:"sector"`
	Employees flexString  `json:"employees"`
	URL       string      `json:"url"`
	Revenue   json.Number `json:"revenue"`
}

// flexString accepts either a JSON string or a bare number.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(b)
	return nil
}

// TransformFortune converts the first limit records into seeds.
func TransformFortune(records []FortuneRecord, limit int) []models.Seed {
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	seeds := make([]models.Seed, 0, len(records))
	for _, r := range records {
		ticker := strings.TrimSpace(r.Ticker)
		if ticker == "" {
			ticker = UnknownTicker
		}
		seeds = append(seeds, models.Seed{
			Ticker:    ticker,
			Name:      r.Company,
			Industry:  r.Sector,
			Employees: ParseEmployees(string(r.Employees)),
			Website:   StripScheme(r.URL),
			Revenue:   RevenueFromMillions(r.Revenue.String()),
		})
	}
	return seeds
}

// ParseEmployees turns "1,234,000" into 1234000. Leading digits are used when
// trailing text follows; anything else yields 0.
func ParseEmployees(s string) int {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// RevenueFromMillions scales a revenue figure given in millions to raw units.
func RevenueFromMillions(s string) float64 {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
	if err != nil {
		return 0
	}
	f, _ := d.Mul(millions).Float64()
	return f
}

// StripScheme reduces a URL to its host part, the form the table links to.
func StripScheme(u string) string {
	u = strings.TrimSpace(u)
	for _, p := range []string{"https://", "http://"} {
		u = strings.TrimPrefix(u, p)
	}
	return strings.TrimSuffix(u, "/")
}

// WriteSeedFile replaces filePath atomically; on any error the existing file
// is left as it was.
func WriteSeedFile(filePath string, seeds []models.Seed) error {
	b, err := json.MarshalIndent(seeds, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode seeds")
	}
	b = append(b, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(filePath), ".seed-*.json")
	if err != nil {
		return errors.Wrap(err, "create temp seed file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write temp seed file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp seed file")
	}
	if err := os.Rename(tmpName, filePath); err != nil {
		return errors.Wrap(err, "replace seed file")
	}
	return nil
}
