package handler

import (
	"sipm-be-svc/internal/models"
	"sipm-be-svc/internal/service"
	"sipm-be-svc/pkg/logger"
	"sipm-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string          `json:"username" binding:"required" example:"system_admin"`
	Password string          `json:"password" binding:"required" example:"secret"`
	Role     models.UserRole `json:"role" binding:"required" example:"Admin"`
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Create a session for the given username and role. Any credentials are accepted.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login request"
// @Success 200 {object} utils.APIResponse{data=response.LoginResponse} "Login successful"
// @Failure 400 {object} utils.APIResponse "Invalid request body"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid login request body")
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	result, err := h.authService.Login(req.Username, req.Password, req.Role)
	if err != nil {
		h.logger.WithError(err).WithField("username", req.Username).Error("Login failed")
		utils.BadRequestResponse(c, "Login failed", err)
		return
	}

	utils.SuccessResponse(c, "Login successful", result)
}
