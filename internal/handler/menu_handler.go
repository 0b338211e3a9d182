package handler

import (
	"sipm-be-svc/internal/middleware"
	"sipm-be-svc/internal/service"
	"sipm-be-svc/pkg/logger"
	"sipm-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MenuHandler handles navigation menu HTTP requests
type MenuHandler struct {
	menuService service.MenuService
	logger      *logger.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService service.MenuService, logger *logger.Logger) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
		logger:      logger,
	}
}

// GetMenus handles GET /api/v1/menus
// @Summary Get navigation menus for the session role
// @Tags menus
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response.MenuResponse} "Menus retrieved successfully"
// @Failure 401 {object} utils.APIResponse "Missing session"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/menus [get]
func (h *MenuHandler) GetMenus(c *gin.Context) {
	user, ok := middleware.SessionUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Missing session")
		return
	}

	menus, err := h.menuService.GetMenusByRole(user.Role)
	if err != nil {
		h.logger.WithError(err).WithField("role", string(user.Role)).Error("Failed to get menus")
		utils.InternalServerErrorResponse(c, "Failed to get menus", err)
		return
	}

	utils.SuccessResponse(c, "Menus retrieved successfully", menus)
}
