package aggregation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aptrank/server/internal/models"
)

func trade(name, district string, price int, area float64) models.RawTransactionRecord {
	return models.RawTransactionRecord{
		ComplexName: name, District: district, Kind: models.KindTrade,
		Price: price, AreaSqm: area, Year: 2026, Month: 7,
	}
}

func jeonse(name string, deposit int) models.RawTransactionRecord {
	return models.RawTransactionRecord{
		ComplexName: name, Kind: models.KindJeonse, Price: deposit, Year: 2026, Month: 7,
	}
}

func monthly(name string, deposit, rent int) models.RawTransactionRecord {
	return models.RawTransactionRecord{
		ComplexName: name, Kind: models.KindMonthlyRent, Deposit: deposit, MonthlyRent: rent,
		Year: 2026, Month: 7,
	}
}

func TestAggregateSingleTrade(t *testing.T) {
	// 85,000만원 for 84.95㎡ is 3,308만원 per pyeong.
	complexes := Aggregate([]models.RawTransactionRecord{trade("힐스테이트", "역삼동", 85000, 84.95)}, nil, 1)

	require.Len(t, complexes, 1)
	agg := complexes[0]
	assert.Equal(t, 1, agg.TradeCount)
	assert.Equal(t, 85000, agg.TradeAvgPrice)
	expected := int(math.Round(85000 / (84.95 / 3.3058)))
	assert.Equal(t, expected, agg.TradePricePerPyeong)
	assert.Equal(t, 3308, agg.TradePricePerPyeong)
}

func TestAggregateAdditivity(t *testing.T) {
	trades := []models.RawTransactionRecord{
		trade("은마아파트", "대치동", 240000, 76.79),
		trade("은마아파트", "대치동", 250000, 84.43),
		trade("은마아파트", "대치동", 245000, 76.79),
		trade("도곡렉슬", "도곡동", 300000, 114.91),
	}

	complexes := Aggregate(trades, nil, 1)
	require.Len(t, complexes, 2)

	byName := make(map[string]*models.AggregatedComplex)
	for _, agg := range complexes {
		byName[agg.Name] = agg
	}
	assert.Equal(t, 3, byName["은마아파트"].TradeCount)
	assert.Equal(t, 1, byName["도곡렉슬"].TradeCount)
	assert.Equal(t, 735000, byName["은마아파트"].TradeTotalPrice)
}

func TestAggregateDistrictFromFirstOccurrence(t *testing.T) {
	trades := []models.RawTransactionRecord{
		trade("래미안", "역삼동", 100000, 84.9),
		trade("래미안", "대치동", 110000, 84.9),
	}

	complexes := Aggregate(trades, nil, 1)
	require.Len(t, complexes, 1)
	assert.Equal(t, "역삼동", complexes[0].District)
}

func TestAggregateRentRouting(t *testing.T) {
	rents := []models.RawTransactionRecord{
		jeonse("은마아파트", 40000),
		jeonse("은마아파트", 44000),
		monthly("은마아파트", 10000, 120),
	}

	complexes := Aggregate(nil, rents, 1)
	require.Len(t, complexes, 1)
	agg := complexes[0]

	assert.Equal(t, 2, agg.JeonseCount)
	assert.Equal(t, 42000, agg.JeonseAvgPrice)
	assert.Equal(t, 1, agg.MonthlyRentCount)
	assert.Equal(t, 10000, agg.MonthlyRentAvgDeposit)
	assert.Equal(t, 120, agg.MonthlyRentAvgAmount)
	assert.Zero(t, agg.TradeCount)
	assert.Zero(t, agg.TradePricePerPyeong)
}

func TestAggregateFirstSeenOrder(t *testing.T) {
	trades := []models.RawTransactionRecord{
		trade("C단지", "a", 100, 80),
		trade("A단지", "a", 100, 80),
		trade("B단지", "a", 100, 80),
		trade("A단지", "a", 100, 80),
	}

	complexes := Aggregate(trades, nil, 1)
	require.Len(t, complexes, 3)
	assert.Equal(t, "C단지", complexes[0].Name)
	assert.Equal(t, "A단지", complexes[1].Name)
	assert.Equal(t, "B단지", complexes[2].Name)
}

func TestAggregateZeroAreaPerPyeong(t *testing.T) {
	complexes := Aggregate([]models.RawTransactionRecord{trade("이상치", "어딘가", 50000, 0)}, nil, 1)
	require.Len(t, complexes, 1)
	assert.Zero(t, complexes[0].TradePricePerPyeong)
	assert.Equal(t, 50000, complexes[0].TradeAvgPrice)
}

func TestChangePercentPlaceholder(t *testing.T) {
	trades := []models.RawTransactionRecord{
		trade("A단지", "a", 100000, 84),
		trade("B단지", "a", 100000, 84),
	}

	first := Aggregate(trades, nil, 42)
	second := Aggregate(trades, nil, 42)
	other := Aggregate(trades, nil, 43)

	for i := range first {
		assert.GreaterOrEqual(t, first[i].ChangePercent, -3.0)
		assert.Less(t, first[i].ChangePercent, 7.01)
		assert.Equal(t, first[i].ChangePercent, second[i].ChangePercent, "same seed must agree")
	}
	// Different seeds should produce a different signal somewhere.
	same := true
	for i := range first {
		if first[i].ChangePercent != other[i].ChangePercent {
			same = false
		}
	}
	assert.False(t, same)
}

func TestNoiseDeterministic(t *testing.T) {
	assert.Equal(t, Noise(12.34), Noise(12.34))
	v := Noise(99.9)
	assert.GreaterOrEqual(t, v, 0.0)
	assert.Less(t, v, 1.0)
}
