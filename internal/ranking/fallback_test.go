package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFallbackDeterministic(t *testing.T) {
	first := GenerateFallback("서울특별시 강남구", 10)
	second := GenerateFallback("서울특별시 강남구", 10)
	assert.Equal(t, first, second)
}

func TestGenerateFallbackRegionDictionary(t *testing.T) {
	rankings := GenerateFallback("서울특별시 서초구", 10)
	require.NotEmpty(t, rankings.Composite)

	names := make(map[string]bool)
	for _, entry := range rankings.Composite {
		names[entry.Name] = true
	}
	assert.True(t, names["반포자이"], "서초 list should be selected")
}

func TestGenerateFallbackGenericList(t *testing.T) {
	rankings := GenerateFallback("철원군", 10)
	require.NotEmpty(t, rankings.Composite)

	names := make(map[string]bool)
	for _, entry := range rankings.Composite {
		names[entry.Name] = true
	}
	assert.True(t, names["래미안"], "generic list should be selected")
}

func TestGenerateFallbackShape(t *testing.T) {
	rankings := GenerateFallback("서울특별시 송파구", 5)

	// Same structure as the live engine: five categories, capped length,
	// contiguous ranks, jeonse between 60 and 75 percent of trade price.
	assert.NotEmpty(t, rankings.Composite)
	assert.NotEmpty(t, rankings.TradePricePerPyeong)
	assert.NotEmpty(t, rankings.JeonsePrice)
	assert.NotEmpty(t, rankings.MonthlyRentPrice)
	assert.NotEmpty(t, rankings.TradeVolume)

	assert.LessOrEqual(t, len(rankings.Composite), 5)
	for i, entry := range rankings.Composite {
		assert.Equal(t, i+1, entry.Rank)
		assert.Positive(t, entry.CompositeScore)
	}

	byName := make(map[string]int)
	for _, entry := range rankings.TradePricePerPyeong {
		byName[entry.Name] = entry.AvgPrice
	}
	for _, entry := range rankings.JeonsePrice {
		tradePrice, ok := byName[entry.Name]
		if !ok {
			continue
		}
		ratio := float64(entry.AvgPrice) / float64(tradePrice)
		assert.GreaterOrEqual(t, ratio, 0.59)
		assert.LessOrEqual(t, ratio, 0.76)
	}
}

func TestGenerateFallbackDifferentRegionsDiffer(t *testing.T) {
	gangnam := GenerateFallback("강남구", 10)
	mapo := GenerateFallback("마포구", 10)
	assert.NotEqual(t, gangnam.Composite, mapo.Composite)
}
