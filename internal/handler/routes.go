package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sipm-be-svc/internal/middleware"
	"sipm-be-svc/internal/service"
	"sipm-be-svc/pkg/logger"
)

// SetupRoutes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	authService service.AuthService,
	residentService service.ResidentService,
	reportService service.ReportService,
	dashboardService service.DashboardService,
	menuService service.MenuService,
	logger *logger.Logger,
) {
	// Initialize handlers
	authHandler := NewAuthHandler(authService, logger)
	residentHandler := NewResidentHandler(residentService, logger)
	reportHandler := NewReportHandler(reportService, logger)
	dashboardHandler := NewDashboardHandler(dashboardService, logger)
	menuHandler := NewMenuHandler(menuService, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}

		// Everything below needs a session token
		session := v1.Group("")
		session.Use(middleware.RequireSession(authService))

		// Navigation menus
		session.GET("/menus", menuHandler.GetMenus)

		// Resident registry routes
		residents := session.Group("/residents")
		{
			residents.GET("", residentHandler.ListResidents)
			residents.POST("", residentHandler.CreateResident)
			residents.GET("/check-nik", residentHandler.CheckNIK)
			residents.GET("/:id", residentHandler.GetResident)
			residents.PUT("/:id", residentHandler.UpdateResident)
			residents.DELETE("/:id", residentHandler.DeleteResident)
		}

		// Dashboard routes
		dashboard := session.Group("/dashboard")
		{
			dashboard.GET("/statistics", dashboardHandler.GetStatistics)
			dashboard.GET("/trend", dashboardHandler.GetTrend)
		}

		// Report routes
		reports := session.Group("/reports")
		{
			reports.GET("", reportHandler.GetReport)
			reports.GET("/export/excel", reportHandler.ExportExcel)
			reports.GET("/export/pdf", reportHandler.ExportPDF)
		}
	}
}

// HealthCheck reports service liveness
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "SIPM Backend Service",
	})
}
