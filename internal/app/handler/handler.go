package handler

import (
	"thetis_mrv/internal/app/handler/api"
	"thetis_mrv/internal/app/ingest"
	"thetis_mrv/internal/app/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Repository                 *repository.Repository
	ShipAPIHandler             *api.ShipHandler
	MonitoringResultAPIHandler *api.MonitoringResultHandler
	IngestAPIHandler           *api.IngestHandler
	LeaderboardAPIHandler      *api.LeaderboardHandler
}

func NewHandler(rep *repository.Repository, orchestrator *ingest.Orchestrator) *Handler {
	return &Handler{
		Repository:                 rep,
		ShipAPIHandler:             &api.ShipHandler{Repository: rep},
		MonitoringResultAPIHandler: &api.MonitoringResultHandler{Repository: rep},
		IngestAPIHandler:           &api.IngestHandler{Orchestrator: orchestrator, Cache: rep},
		LeaderboardAPIHandler:      &api.LeaderboardHandler{Repository: rep},
	}
}

func (h *Handler) SetupRoutes(router *gin.Engine) {
	apiGroup := router.Group("/api")
	{
		// Домен кораблей (поисковая выдача реестра)
		apiGroup.GET("/ships", h.ShipAPIHandler.GetShipsAPI)
		apiGroup.GET("/ships/:imo_number/:reporting_period", h.ShipAPIHandler.GetShipAPI)
		apiGroup.POST("/ships", h.ShipAPIHandler.CreateShipAPI)

		// Домен показателей мониторинга
		apiGroup.GET("/monitoring_results/:imo_number/:reporting_period", h.MonitoringResultAPIHandler.GetMonitoringResultAPI)
		apiGroup.POST("/monitoring_results", h.MonitoringResultAPIHandler.CreateMonitoringResultAPI)

		// Загрузка выгрузок из хранилища
		apiGroup.POST("/load_data", h.IngestAPIHandler.LoadDataAPI)

		// Рейтинги эмитентов
		apiGroup.GET("/leaderboard/total", h.LeaderboardAPIHandler.GetTopByTotalAPI)
		apiGroup.GET("/leaderboard/per_distance", h.LeaderboardAPIHandler.GetTopByDistanceAPI)
	}
}
