// Package proximity implements radius searches over the static amenity
// registries. One generic search covers schools, subway stations and bus
// stops; the per-domain functions only add their filter and result shape.
package proximity

import (
	"sort"

	orbgeo "github.com/paulmach/orb/geo"

	"aptrank/server/internal/geo"
	"aptrank/server/internal/models"
)

// Locatable is any registry entry with a fixed coordinate.
type Locatable interface {
	Location() models.Coordinate
}

// Match pairs a candidate with the distance data computed for one query.
type Match[T Locatable] struct {
	Item               T
	DistanceKm         float64
	WalkingTimeMinutes int
}

// Search returns the candidates within radiusKm of center, closest first,
// truncated to limit. A nil keep predicate admits every candidate. Ties in
// distance preserve candidate order. Candidates with NaN coordinates never
// pass the radius comparison and drop out.
func Search[T Locatable](center models.Coordinate, radiusKm float64, limit int, candidates []T, keep func(T) bool) []Match[T] {
	// Cheap bounding-box rejection before the exact haversine test. Padded
	// so the box never undercuts the haversine radius (orb assumes the
	// WGS84 sphere, the distance math a 6371 km one).
	bound := orbgeo.NewBoundAroundPoint(center.Point(), radiusKm*1000*1.01)

	matches := make([]Match[T], 0, len(candidates))
	for _, c := range candidates {
		if keep != nil && !keep(c) {
			continue
		}
		loc := c.Location()
		if !bound.Contains(loc.Point()) {
			continue
		}
		d := geo.DistanceKm(center, loc)
		if !(d <= radiusKm) {
			continue
		}
		matches = append(matches, Match[T]{
			Item:               c,
			DistanceKm:         d,
			WalkingTimeMinutes: geo.WalkingMinutes(d),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].DistanceKm < matches[j].DistanceKm
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
