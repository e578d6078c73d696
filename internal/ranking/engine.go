// Package ranking turns per-complex aggregates into the five category
// rankings, synthesizes fallback rankings when live data is unavailable,
// and hosts the orchestrator tying resolution, ingestion, aggregation and
// scoring together.
package ranking

import (
	"math"
	"sort"

	"aptrank/server/internal/models"
)

// Composite score weighting. Fixed by design, not configurable.
const (
	volumeWeight = 0.4
	priceWeight  = 0.3
	changeWeight = 0.3
)

// Rank scores the complexes against each other and builds the five category
// lists, each independently sorted descending and truncated to limit.
// Scores are normalized against this request's maxima only. An empty input
// yields five empty lists; the orchestrator treats that as the fallback
// trigger.
func Rank(complexes []*models.AggregatedComplex, limit int) models.CategoryRankings {
	score(complexes)

	return models.CategoryRankings{
		Composite: buildCategory(complexes, limit,
			nil,
			func(a, b *models.AggregatedComplex) bool { return a.CompositeScore > b.CompositeScore },
			compositeEntry),
		TradePricePerPyeong: buildCategory(complexes, limit,
			func(a *models.AggregatedComplex) bool { return a.TradePricePerPyeong > 0 },
			func(a, b *models.AggregatedComplex) bool { return a.TradePricePerPyeong > b.TradePricePerPyeong },
			tradeEntry),
		JeonsePrice: buildCategory(complexes, limit,
			func(a *models.AggregatedComplex) bool { return a.JeonseAvgPrice > 0 },
			func(a, b *models.AggregatedComplex) bool { return a.JeonseAvgPrice > b.JeonseAvgPrice },
			jeonseEntry),
		MonthlyRentPrice: buildCategory(complexes, limit,
			func(a *models.AggregatedComplex) bool { return a.MonthlyRentCount > 0 },
			func(a, b *models.AggregatedComplex) bool { return a.MonthlyRentAvgDeposit > b.MonthlyRentAvgDeposit },
			monthlyRentEntry),
		TradeVolume: buildCategory(complexes, limit,
			nil,
			func(a, b *models.AggregatedComplex) bool { return a.TotalVolume() > b.TotalVolume() },
			volumeEntry),
	}
}

// score runs the normalize pass: request-wide maxima first, then the three
// sub-scores and the weighted composite per complex.
func score(complexes []*models.AggregatedComplex) {
	var maxVolume, maxPrice int
	var maxChange float64
	for _, agg := range complexes {
		if v := agg.TotalVolume(); v > maxVolume {
			maxVolume = v
		}
		if agg.TradePricePerPyeong > maxPrice {
			maxPrice = agg.TradePricePerPyeong
		}
		if c := math.Abs(agg.ChangePercent); c > maxChange {
			maxChange = c
		}
	}

	for _, agg := range complexes {
		agg.VolumeScore = 0
		if maxVolume > 0 {
			agg.VolumeScore = 100 * float64(agg.TotalVolume()) / float64(maxVolume)
		}
		agg.PriceScore = 0
		if maxPrice > 0 {
			agg.PriceScore = 100 * float64(agg.TradePricePerPyeong) / float64(maxPrice)
		}
		// Neutral midpoint when there is no variation to normalize against.
		agg.ChangeScore = 50
		if maxChange > 0 {
			agg.ChangeScore = 100 * (agg.ChangePercent + maxChange) / (2 * maxChange)
		}
		agg.CompositeScore = round1(agg.VolumeScore*volumeWeight +
			agg.PriceScore*priceWeight +
			agg.ChangeScore*changeWeight)
	}
}

func buildCategory(
	complexes []*models.AggregatedComplex,
	limit int,
	filter func(*models.AggregatedComplex) bool,
	higher func(a, b *models.AggregatedComplex) bool,
	project func(*models.AggregatedComplex) models.RankingEntry,
) []models.RankingEntry {
	kept := make([]*models.AggregatedComplex, 0, len(complexes))
	for _, agg := range complexes {
		if filter == nil || filter(agg) {
			kept = append(kept, agg)
		}
	}

	// Stable: ties keep input (first-seen) order.
	sort.SliceStable(kept, func(i, j int) bool { return higher(kept[i], kept[j]) })

	if limit > 0 && len(kept) > limit {
		kept = kept[:limit]
	}

	entries := make([]models.RankingEntry, len(kept))
	for i, agg := range kept {
		entry := project(agg)
		entry.Rank = i + 1
		entries[i] = entry
	}
	return entries
}

func compositeEntry(agg *models.AggregatedComplex) models.RankingEntry {
	return models.RankingEntry{
		Name:             agg.Name,
		District:         agg.District,
		AvgPrice:         agg.TradeAvgPrice,
		PricePerPyeong:   agg.TradePricePerPyeong,
		TransactionCount: agg.TotalVolume(),
		ChangePercent:    agg.ChangePercent,
		CompositeScore:   agg.CompositeScore,
	}
}

func tradeEntry(agg *models.AggregatedComplex) models.RankingEntry {
	return models.RankingEntry{
		Name:             agg.Name,
		District:         agg.District,
		AvgPrice:         agg.TradeAvgPrice,
		PricePerPyeong:   agg.TradePricePerPyeong,
		TransactionCount: agg.TradeCount,
		ChangePercent:    agg.ChangePercent,
	}
}

func jeonseEntry(agg *models.AggregatedComplex) models.RankingEntry {
	return models.RankingEntry{
		Name:             agg.Name,
		District:         agg.District,
		AvgPrice:         agg.JeonseAvgPrice,
		TransactionCount: agg.JeonseCount,
		ChangePercent:    agg.ChangePercent,
	}
}

func monthlyRentEntry(agg *models.AggregatedComplex) models.RankingEntry {
	return models.RankingEntry{
		Name:               agg.Name,
		District:           agg.District,
		AvgPrice:           agg.MonthlyRentAvgDeposit,
		TransactionCount:   agg.MonthlyRentCount,
		ChangePercent:      agg.ChangePercent,
		MonthlyRentDeposit: agg.MonthlyRentAvgDeposit,
		MonthlyRentAmount:  agg.MonthlyRentAvgAmount,
	}
}

func volumeEntry(agg *models.AggregatedComplex) models.RankingEntry {
	return models.RankingEntry{
		Name:             agg.Name,
		District:         agg.District,
		AvgPrice:         agg.TradeAvgPrice,
		PricePerPyeong:   agg.TradePricePerPyeong,
		TransactionCount: agg.TotalVolume(),
		ChangePercent:    agg.ChangePercent,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
