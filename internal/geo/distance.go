// Package geo provides great-circle distance math for the proximity
// searches. Distances are haversine on a 6371 km sphere.
package geo

import (
	"math"

	"aptrank/server/internal/models"
)

const (
	earthRadiusKm = 6371.0

	// Assumed walking speed when converting a distance to minutes on foot.
	walkingSpeedKmh = 4.0
)

// DistanceKm returns the great-circle distance between two coordinates in
// kilometers. NaN inputs propagate NaN.
func DistanceKm(a, b models.Coordinate) float64 {
	latA := a.Latitude * math.Pi / 180
	latB := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// WalkingMinutes converts a distance to whole minutes on foot at 4 km/h,
// rounded to the nearest minute.
func WalkingMinutes(distanceKm float64) int {
	return int(math.Round(distanceKm / walkingSpeedKmh * 60))
}

// RoundKm rounds a distance to 3 decimal places for response payloads.
func RoundKm(distanceKm float64) float64 {
	return math.Round(distanceKm*1000) / 1000
}
