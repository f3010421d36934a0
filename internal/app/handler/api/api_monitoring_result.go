package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"thetis_mrv/internal/app/ds"
	"thetis_mrv/internal/app/repository"
)

type MonitoringResultHandler struct {
	Repository interface {
		FindMonitoringResult(imoNumber, reportingPeriod int) (*ds.MonitoringResult, error)
		CreateMonitoringResultIfAbsent(result ds.MonitoringResult) (ds.MonitoringResult, bool, error)
	}
}

// GetMonitoringResultAPI - GET /api/monitoring_results/:imo_number/:reporting_period
func (h *MonitoringResultHandler) GetMonitoringResultAPI(c *gin.Context) {
	imoNumber, reportingPeriod, ok := shipKeyParams(c)
	if !ok {
		return
	}

	result, err := h.Repository.FindMonitoringResult(imoNumber, reportingPeriod)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Monitoring result not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": result,
	})
}

// CreateMonitoringResultAPI - POST /api/monitoring_results - создание одной
// записи показателей. 404, если корабль-владелец не существует, 409 на
// повтор по паре (imo_number, reporting_period).
func (h *MonitoringResultHandler) CreateMonitoringResultAPI(c *gin.Context) {
	var result ds.MonitoringResult
	if err := c.BindJSON(&result); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	created, wasCreated, err := h.Repository.CreateMonitoringResultIfAbsent(result)
	if err != nil {
		if errors.Is(err, repository.ErrShipNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Referenced ship not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	if !wasCreated {
		c.JSON(http.StatusConflict, gin.H{
			"message": "Monitoring result already exists",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": created,
	})
}
