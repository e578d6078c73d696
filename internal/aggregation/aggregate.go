// Package aggregation folds raw transaction records into per-complex
// statistics. Aggregation is a two-phase computation: fold every record
// into accumulators, then derive averages once all records are in.
package aggregation

import (
	"math"

	"aptrank/server/internal/models"
)

// One pyeong in square meters.
const sqmPerPyeong = 3.3058

// Aggregate folds trade and rent records into one aggregate per complex
// name, returned in first-seen order so downstream stable sorts have a
// defined tie order. The district of the first record seen for a complex
// wins. changeSeed drives the placeholder period-over-period trend signal.
func Aggregate(tradeRecords, rentRecords []models.RawTransactionRecord, changeSeed int64) []*models.AggregatedComplex {
	byName := make(map[string]*models.AggregatedComplex)
	var ordered []*models.AggregatedComplex

	get := func(record models.RawTransactionRecord) *models.AggregatedComplex {
		if existing, ok := byName[record.ComplexName]; ok {
			return existing
		}
		created := &models.AggregatedComplex{
			Name:     record.ComplexName,
			District: record.District,
		}
		byName[record.ComplexName] = created
		ordered = append(ordered, created)
		return created
	}

	for _, record := range tradeRecords {
		if record.Kind != models.KindTrade {
			continue
		}
		agg := get(record)
		agg.TradeCount++
		agg.TradeTotalPrice += record.Price
		agg.TradeTotalArea += record.AreaSqm
	}

	for _, record := range rentRecords {
		switch record.Kind {
		case models.KindJeonse:
			agg := get(record)
			agg.JeonseCount++
			agg.JeonseTotalPrice += record.Price
			agg.JeonseTotalArea += record.AreaSqm
		case models.KindMonthlyRent:
			agg := get(record)
			agg.MonthlyRentCount++
			agg.MonthlyRentTotalDeposit += record.Deposit
			agg.MonthlyRentTotalAmount += record.MonthlyRent
		}
	}

	for i, agg := range ordered {
		derive(agg)
		// Placeholder trend signal in [-3%, +7%) until a real two-period
		// comparison lands. Seeded so identical requests agree.
		agg.ChangePercent = round2(-3 + Noise(float64(changeSeed)+float64(i)*7.13)*10)
	}
	return ordered
}

func derive(agg *models.AggregatedComplex) {
	if agg.TradeCount > 0 {
		avgPrice := float64(agg.TradeTotalPrice) / float64(agg.TradeCount)
		agg.TradeAvgPrice = int(math.Round(avgPrice))

		avgPyeong := (agg.TradeTotalArea / float64(agg.TradeCount)) / sqmPerPyeong
		if avgPyeong > 0 {
			agg.TradePricePerPyeong = int(math.Round(avgPrice / avgPyeong))
		}
	}

	if agg.JeonseCount > 0 {
		// Jeonse is quoted as a whole-unit deposit, never per pyeong.
		agg.JeonseAvgPrice = int(math.Round(float64(agg.JeonseTotalPrice) / float64(agg.JeonseCount)))
	}

	if agg.MonthlyRentCount > 0 {
		agg.MonthlyRentAvgDeposit = int(math.Round(float64(agg.MonthlyRentTotalDeposit) / float64(agg.MonthlyRentCount)))
		agg.MonthlyRentAvgAmount = int(math.Round(float64(agg.MonthlyRentTotalAmount) / float64(agg.MonthlyRentCount)))
	}
}

// Noise is a sine-based hash mapping a seed to [0, 1). Reproducible across
// runs for the same seed; nothing more is required of it.
func Noise(seed float64) float64 {
	f := math.Sin(seed) * 10000
	return f - math.Floor(f)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
