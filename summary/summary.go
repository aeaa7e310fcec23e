package summary

import (
	"math"
	"strings"

	"fortune-dashboard/models"
)

// Sector is the industry the growth card tracks.
const Sector = "Technology"

// Cards holds the figures shown above the table, derived from the merged
// dataset of the current page load.
type Cards struct {
	TotalMarketCap float64 `json:"totalMarketCap"`
	AvgEmployees   int     `json:"avgEmployees"`
	Sector         string  `json:"sector"`
	SectorGrowth   float64 `json:"sectorGrowth"` // mean percent change
	SectorCount    int     `json:"sectorCount"`
}

func Compute(companies []models.Company) Cards {
	cards := Cards{Sector: Sector}
	if len(companies) == 0 {
		return cards
	}

	var employees int
	var growth float64
	sector := strings.ToLower(Sector)
	for _, c := range companies {
		cards.TotalMarketCap += c.MarketCap
		employees += c.Employees
		if strings.Contains(strings.ToLower(c.Industry), sector) {
			growth += c.Change
			cards.SectorCount++
		}
	}

	cards.AvgEmployees = int(math.Round(float64(employees) / float64(len(companies))))
	if cards.SectorCount > 0 {
		cards.SectorGrowth = growth / float64(cards.SectorCount)
	}
	return cards
}
