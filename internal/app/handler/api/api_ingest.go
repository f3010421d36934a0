package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"thetis_mrv/internal/app/ds"
)

type IngestHandler struct {
	Orchestrator interface {
		IngestAll(ctx context.Context) (ds.IngestReport, error)
	}
	Cache interface {
		InvalidateLeaderboards(ctx context.Context)
	}
}

// LoadDataAPI - POST /api/load_data - синхронная загрузка всех доступных
// файлов выгрузки. Дубликаты не ошибка: они возвращаются в отчёте.
func (h *IngestHandler) LoadDataAPI(c *gin.Context) {
	report, err := h.Orchestrator.IngestAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	h.Cache.InvalidateLeaderboards(c.Request.Context())

	c.JSON(http.StatusOK, report)
}
