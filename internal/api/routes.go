package api

import "github.com/gin-gonic/gin"

func SetupRoutes(router *gin.Engine, handler *Handler) {
	api := router.Group("/api")
	{
		api.GET("/health", handler.Health)
		api.GET("/rankings", handler.GetRankings)
		api.GET("/schools/nearby", handler.GetNearbySchools)
		api.GET("/subway/nearby", handler.GetNearbySubwayStations)
		api.GET("/subway/search", handler.SearchSubwayStations)
		api.GET("/bus/nearby", handler.GetNearbyBusStops)
	}
}
