package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"weiyue/internal/application/statistics"
	"weiyue/internal/shared/utils"
)

type StatisticsService interface {
	Overview(ctx context.Context) (*statistics.Overview, error)
}

type StatisticsHandler struct {
	service StatisticsService
}

func NewStatisticsHandler(service StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{service: service}
}

// GetStatistics handles GET /api/statistics
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	result, err := h.service.Overview(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
