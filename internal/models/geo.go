package models

import "github.com/paulmach/orb"

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point converts the coordinate to an orb.Point (lon, lat order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Location returns the coordinate itself. Types embedding Coordinate
// satisfy the proximity search's Locatable constraint through it.
func (c Coordinate) Location() Coordinate {
	return c
}

// School is a static registry entry for a school.
type School struct {
	Name       string `json:"name"`
	Level      string `json:"level"`      // 초등학교 / 중학교 / 고등학교
	Foundation string `json:"foundation"` // 공립 / 사립 / 국립
	Coordinate
}

// SubwayStation is a static registry entry for a subway station.
type SubwayStation struct {
	Name          string   `json:"name"`
	EnglishName   string   `json:"english_name"`
	Line          string   `json:"line"`
	IsTransfer    bool     `json:"is_transfer"`
	TransferLines []string `json:"transfer_lines,omitempty"`
	Coordinate
}

// BusStop is a static registry entry for a bus stop.
type BusStop struct {
	Name     string `json:"name"`
	City     string `json:"city"`
	MobileNo string `json:"mobile_no"` // mobile shortcut number shown on the stop sign
	Coordinate
}

// SchoolResult is a school enriched with distance data for one query.
type SchoolResult struct {
	School
	DistanceKm         float64 `json:"distance_km"`
	WalkingTimeMinutes int     `json:"walking_time_minutes"`
}

// SubwayResult is a subway station enriched with distance data for one query.
type SubwayResult struct {
	SubwayStation
	DistanceKm         float64 `json:"distance_km"`
	WalkingTimeMinutes int     `json:"walking_time_minutes"`
}

// BusResult is a bus stop enriched with distance data for one query.
type BusResult struct {
	BusStop
	DistanceKm         float64 `json:"distance_km"`
	WalkingTimeMinutes int     `json:"walking_time_minutes"`
}
