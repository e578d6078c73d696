// Package refdata holds the static reference registries (schools, subway
// stations, bus stops) and the administrative region-code dictionary. All
// data is loaded once at process start and is read-only afterwards, so it
// is shared across requests without locking.
package refdata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"aptrank/server/internal/models"
)

// Registry bundles the amenity lists served by the proximity searches.
type Registry struct {
	Schools  []models.School
	Subway   []models.SubwayStation
	BusStops []models.BusStop
}

// Load returns the builtin registries, replaced entry-for-entry by any JSON
// override files found in dir (schools.json, subway_stations.json,
// bus_stops.json). A present but malformed override file is an error; the
// caller is expected to treat that as fatal at startup.
func Load(dir string, logger *logrus.Logger) (*Registry, error) {
	reg := &Registry{
		Schools:  builtinSchools,
		Subway:   builtinSubwayStations,
		BusStops: builtinBusStops,
	}
	if dir == "" {
		return reg, nil
	}

	if err := loadOverride(dir, "schools.json", &reg.Schools); err != nil {
		return nil, err
	}
	if err := loadOverride(dir, "subway_stations.json", &reg.Subway); err != nil {
		return nil, err
	}
	if err := loadOverride(dir, "bus_stops.json", &reg.BusStops); err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"schools":   len(reg.Schools),
		"subway":    len(reg.Subway),
		"bus_stops": len(reg.BusStops),
	}).Info("Loaded amenity registries")
	return reg, nil
}

func loadOverride[T any](dir, name string, into *[]T) error {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read registry file %s: %w", path, err)
	}

	var entries []T
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse registry file %s: %w", path, err)
	}
	*into = entries
	return nil
}
