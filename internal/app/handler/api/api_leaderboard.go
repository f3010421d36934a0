package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"thetis_mrv/internal/app/ds"
)

const (
	defaultTopN = 10
	maxTopN     = 1000
)

type LeaderboardHandler struct {
	Repository interface {
		TopEmittersByTotal(ctx context.Context, topN int) ([]ds.MonitoringResult, error)
		TopEmittersByDistance(ctx context.Context, topN int) ([]ds.MonitoringResult, error)
	}
}

// GetTopByTotalAPI - GET /api/leaderboard/total - крупнейшие эмитенты по
// суммарным выбросам CO2.
func (h *LeaderboardHandler) GetTopByTotalAPI(c *gin.Context) {
	h.leaderboard(c, h.Repository.TopEmittersByTotal)
}

// GetTopByDistanceAPI - GET /api/leaderboard/per_distance - крупнейшие
// эмитенты по среднему выбросу CO2 на милю.
func (h *LeaderboardHandler) GetTopByDistanceAPI(c *gin.Context) {
	h.leaderboard(c, h.Repository.TopEmittersByDistance)
}

func (h *LeaderboardHandler) leaderboard(c *gin.Context, top func(context.Context, int) ([]ds.MonitoringResult, error)) {
	topN := defaultTopN
	if raw := c.Query("top_n"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > maxTopN {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid top_n",
			})
			return
		}
		topN = v
	}

	results, err := top(c.Request.Context(), topN)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  results,
		"count": len(results),
	})
}
