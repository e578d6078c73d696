package proximity

import (
	"strings"

	"aptrank/server/internal/geo"
	"aptrank/server/internal/models"
)

// NearbySchools returns schools within radiusKm of center, closest first.
// A non-empty levelFilter keeps only schools whose level contains it
// (e.g. "초등", "중학", "고등").
func NearbySchools(center models.Coordinate, radiusKm float64, limit int, levelFilter string, candidates []models.School) []models.SchoolResult {
	var keep func(models.School) bool
	if levelFilter != "" {
		keep = func(s models.School) bool {
			return strings.Contains(s.Level, levelFilter)
		}
	}

	matches := Search(center, radiusKm, limit, candidates, keep)
	results := make([]models.SchoolResult, len(matches))
	for i, m := range matches {
		results[i] = models.SchoolResult{
			School:             m.Item,
			DistanceKm:         geo.RoundKm(m.DistanceKm),
			WalkingTimeMinutes: m.WalkingTimeMinutes,
		}
	}
	return results
}

// NearbySubwayStations returns subway stations within radiusKm of center,
// closest first.
func NearbySubwayStations(center models.Coordinate, radiusKm float64, limit int, candidates []models.SubwayStation) []models.SubwayResult {
	matches := Search(center, radiusKm, limit, candidates, nil)
	results := make([]models.SubwayResult, len(matches))
	for i, m := range matches {
		results[i] = models.SubwayResult{
			SubwayStation:      m.Item,
			DistanceKm:         geo.RoundKm(m.DistanceKm),
			WalkingTimeMinutes: m.WalkingTimeMinutes,
		}
	}
	return results
}

// NearbyBusStops returns bus stops within radiusKm of center, closest first.
func NearbyBusStops(center models.Coordinate, radiusKm float64, limit int, candidates []models.BusStop) []models.BusResult {
	matches := Search(center, radiusKm, limit, candidates, nil)
	results := make([]models.BusResult, len(matches))
	for i, m := range matches {
		results[i] = models.BusResult{
			BusStop:            m.Item,
			DistanceKm:         geo.RoundKm(m.DistanceKm),
			WalkingTimeMinutes: m.WalkingTimeMinutes,
		}
	}
	return results
}

// SearchStationsByName returns stations whose Korean or romanized name
// contains the query, case-insensitively, in registry order. No distance is
// computed; the caller applies any limit.
func SearchStationsByName(query string, candidates []models.SubwayStation) []models.SubwayStation {
	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]models.SubwayStation, 0)
	if q == "" {
		return results
	}
	for _, s := range candidates {
		if strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.EnglishName), q) {
			results = append(results, s)
		}
	}
	return results
}
