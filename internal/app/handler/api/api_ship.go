package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"thetis_mrv/internal/app/ds"
)

type ShipHandler struct {
	Repository interface {
		FindShip(imoNumber, reportingPeriod int) (*ds.Ship, error)
		CreateShipIfAbsent(ship ds.Ship) (ds.Ship, bool, error)
		SearchShips(imoNumber *int, nameSubstring string, reportingPeriod *int) ([]ds.Ship, error)
	}
}

// GetShipsAPI - GET /api/ships - поисковая выдача реестра.
// Фильтры imo_number, name и reporting_period объединяются по И.
func (h *ShipHandler) GetShipsAPI(c *gin.Context) {
	var imoNumber, reportingPeriod *int

	if raw := c.Query("imo_number"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid imo_number",
			})
			return
		}
		imoNumber = &v
	}
	if raw := c.Query("reporting_period"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid reporting_period",
			})
			return
		}
		reportingPeriod = &v
	}

	ships, err := h.Repository.SearchShips(imoNumber, c.Query("name"), reportingPeriod)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  ships,
		"count": len(ships),
	})
}

// GetShipAPI - GET /api/ships/:imo_number/:reporting_period - один корабль
func (h *ShipHandler) GetShipAPI(c *gin.Context) {
	imoNumber, reportingPeriod, ok := shipKeyParams(c)
	if !ok {
		return
	}

	ship, err := h.Repository.FindShip(imoNumber, reportingPeriod)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	if ship == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Ship not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": ship,
	})
}

// CreateShipAPI - POST /api/ships - создание одной записи корабля.
// Повтор по составному ключу отклоняется с 409, существующая строка не
// меняется.
func (h *ShipHandler) CreateShipAPI(c *gin.Context) {
	var ship ds.Ship
	if err := c.BindJSON(&ship); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	created, wasCreated, err := h.Repository.CreateShipIfAbsent(ship)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	if !wasCreated {
		c.JSON(http.StatusConflict, gin.H{
			"message": "Ship already exists",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": created,
	})
}

// shipKeyParams разбирает составной ключ из пути.
func shipKeyParams(c *gin.Context) (int, int, bool) {
	imoNumber, err := strconv.Atoi(c.Param("imo_number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid imo_number",
		})
		return 0, 0, false
	}
	reportingPeriod, err := strconv.Atoi(c.Param("reporting_period"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reporting_period",
		})
		return 0, 0, false
	}
	return imoNumber, reportingPeriod, true
}
