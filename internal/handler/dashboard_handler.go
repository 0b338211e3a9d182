package handler

import (
	"sipm-be-svc/internal/service"
	"sipm-be-svc/pkg/logger"
	"sipm-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetStatistics handles GET /api/v1/dashboard/statistics
// @Summary Get population statistics
// @Description Get total population, gender split and mortality count
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.DashboardStatisticsResponse} "Statistics retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard/statistics [get]
func (h *DashboardHandler) GetStatistics(c *gin.Context) {
	statistics, err := h.dashboardService.GetStatistics()
	if err != nil {
		h.logger.WithError(err).Error("Failed to get dashboard statistics")
		utils.InternalServerErrorResponse(c, "Failed to get dashboard statistics", err)
		return
	}

	utils.SuccessResponse(c, "Statistics retrieved successfully", statistics)
}

// GetTrend handles GET /api/v1/dashboard/trend
// @Summary Get the population trend series
// @Description Get the cumulative population and mortality series in chronological entry order
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response.TrendPointResponse} "Trend retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard/trend [get]
func (h *DashboardHandler) GetTrend(c *gin.Context) {
	trend, err := h.dashboardService.GetPopulationTrend()
	if err != nil {
		h.logger.WithError(err).Error("Failed to get population trend")
		utils.InternalServerErrorResponse(c, "Failed to get population trend", err)
		return
	}

	utils.SuccessResponse(c, "Trend retrieved successfully", trend)
}
