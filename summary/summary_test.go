package summary

import (
	"testing"

	"fortune-dashboard/models"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	cards := Compute([]models.Company{
		{Industry: "Technology", MarketCap: 3e12, Employees: 100, Change: 2},
		{Industry: "Information Technology", MarketCap: 1e12, Employees: 201, Change: -1},
		{Industry: "Retailing", MarketCap: 0, Employees: 300, Change: 5},
	})

	assert.Equal(t, 4e12, cards.TotalMarketCap)
	assert.Equal(t, 200, cards.AvgEmployees)
	assert.Equal(t, 2, cards.SectorCount)
	assert.InDelta(t, 0.5, cards.SectorGrowth, 1e-9)
}

func TestComputeEmpty(t *testing.T) {
	cards := Compute(nil)

	assert.Equal(t, Sector, cards.Sector)
	assert.Zero(t, cards.TotalMarketCap)
	assert.Zero(t, cards.AvgEmployees)
	assert.Zero(t, cards.SectorGrowth)
}
