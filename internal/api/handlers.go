package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"aptrank/server/internal/models"
	"aptrank/server/internal/proximity"
	"aptrank/server/internal/refdata"
)

// Presentation-layer defaults for the proximity endpoints. The search
// itself takes radius and limit as explicit parameters.
const (
	defaultSchoolRadiusKm = 1.5
	defaultSubwayRadiusKm = 2.0
	defaultBusRadiusKm    = 0.5
	defaultNearbyLimit    = 10
)

// Ranker is the slice of the ranking orchestrator the handlers use.
type Ranker interface {
	GetRanking(ctx context.Context, address string, limit int) models.RankingResult
}

type Handler struct {
	ranker       Ranker
	registry     *refdata.Registry
	logger       *logrus.Logger
	rankingLimit int
}

func NewHandler(ranker Ranker, registry *refdata.Registry, rankingLimit int, logger *logrus.Logger) *Handler {
	if rankingLimit <= 0 {
		rankingLimit = 10
	}
	return &Handler{
		ranker:       ranker,
		registry:     registry,
		logger:       logger,
		rankingLimit: rankingLimit,
	}
}

// GetRankings returns the apartment rankings for a free-text address.
// Always 200 with a complete result; fallback data is flagged, never an
// error.
func (h *Handler) GetRankings(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "address is required"})
		return
	}

	limit := h.intQuery(c, "limit", h.rankingLimit)
	result := h.ranker.GetRanking(c.Request.Context(), address, limit)
	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetNearbySchools(c *gin.Context) {
	center, ok := h.center(c)
	if !ok {
		return
	}
	radius := h.floatQuery(c, "radius", defaultSchoolRadiusKm)
	limit := h.intQuery(c, "limit", defaultNearbyLimit)
	level := c.Query("level")

	c.JSON(http.StatusOK, proximity.NearbySchools(center, radius, limit, level, h.registry.Schools))
}

func (h *Handler) GetNearbySubwayStations(c *gin.Context) {
	center, ok := h.center(c)
	if !ok {
		return
	}
	radius := h.floatQuery(c, "radius", defaultSubwayRadiusKm)
	limit := h.intQuery(c, "limit", defaultNearbyLimit)

	c.JSON(http.StatusOK, proximity.NearbySubwayStations(center, radius, limit, h.registry.Subway))
}

// SearchSubwayStations looks stations up by name substring instead of by
// location.
func (h *Handler) SearchSubwayStations(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	limit := h.intQuery(c, "limit", defaultNearbyLimit)

	stations := proximity.SearchStationsByName(name, h.registry.Subway)
	if limit > 0 && len(stations) > limit {
		stations = stations[:limit]
	}
	c.JSON(http.StatusOK, stations)
}

func (h *Handler) GetNearbyBusStops(c *gin.Context) {
	center, ok := h.center(c)
	if !ok {
		return
	}
	radius := h.floatQuery(c, "radius", defaultBusRadiusKm)
	limit := h.intQuery(c, "limit", defaultNearbyLimit)

	c.JSON(http.StatusOK, proximity.NearbyBusStops(center, radius, limit, h.registry.BusStops))
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) center(c *gin.Context) (models.Coordinate, bool) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		h.logger.WithFields(logrus.Fields{
			"lat": c.Query("lat"),
			"lng": c.Query("lng"),
		}).Warn("Rejected proximity request with bad coordinates")
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng are required numeric parameters"})
		return models.Coordinate{}, false
	}
	return models.Coordinate{Latitude: lat, Longitude: lng}, true
}

func (h *Handler) intQuery(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func (h *Handler) floatQuery(c *gin.Context, name string, fallback float64) float64 {
	value, err := strconv.ParseFloat(c.Query(name), 64)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
