package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	cases := map[float64]string{
		0:                "$0",
		950:              "$950",
		1500:             "$1.5K",
		648125000000:     "$648.1B",
		42800000000000:   "$42.8T",
		2000000000:       "$2B",
		999960:           "$1M",
		3450000000000000: "$3450T",
		-1200000:         "-$1.2M",
	}
	for in, want := range cases {
		assert.Equal(t, want, Currency(in), "%v", in)
	}
}

func TestNumber(t *testing.T) {
	cases := map[float64]string{
		10:      "10",
		145000:  "145K",
		2100000: "2.1M",
		1525000: "1.5M",
		999.96:  "1K",
		12.34:   "12.3",
	}
	for in, want := range cases {
		assert.Equal(t, want, Number(in), "%v", in)
	}
}

func TestChange(t *testing.T) {
	assert.Equal(t, "+1.50%", Change(1.5))
	assert.Equal(t, "-0.40%", Change(-0.4))
	assert.Equal(t, "0.00%", Change(0))
	assert.Equal(t, "0.00%", Change(-0.001))
	assert.Equal(t, "+12.35%", Change(12.345))

	assert.Equal(t, "up", ChangeClass(0.1))
	assert.Equal(t, "down", ChangeClass(0))
	assert.Equal(t, "down", ChangeClass(-2))
}

func TestRank(t *testing.T) {
	assert.Equal(t, "#1", Rank(1))
	assert.Equal(t, "#100", Rank(100))
}
