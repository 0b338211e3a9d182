package handler

import (
	"fmt"
	"net/http"
	"time"

	"sipm-be-svc/internal/models"
	"sipm-be-svc/internal/service"
	"sipm-be-svc/pkg/logger"
	"sipm-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

const (
	excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType   = "application/pdf"
)

// ReportHandler handles report and export HTTP requests
type ReportHandler struct {
	reportService service.ReportService
	logger        *logger.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService service.ReportService, logger *logger.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// parseCriteria builds report criteria from query parameters. Returns an
// error message suitable for a 400 response when a parameter is malformed.
func parseCriteria(c *gin.Context) (service.ReportCriteria, error) {
	criteria := service.ReportCriteria{
		RT:     c.Query("rt"),
		Dusun:  c.Query("dusun"),
		Period: service.PeriodMonthly,
	}

	if status := c.Query("status"); status != "" {
		s := models.ResidentStatus(status)
		if !s.IsValid() {
			return criteria, fmt.Errorf("unknown status %q", status)
		}
		criteria.Status = s
	}

	if period := c.Query("period"); period != "" {
		p := service.ReportPeriod(period)
		if !p.IsValid() {
			return criteria, fmt.Errorf("unknown period %q", period)
		}
		criteria.Period = p
	}

	if date := c.Query("date"); date != "" {
		ref, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return criteria, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
		}
		criteria.ReferenceDate = &ref
	}

	return criteria, nil
}

// GetReport handles GET /api/v1/reports
// @Summary Get a filtered report view
// @Description Filter residents by RT substring, dusun substring (case-insensitive), status and reporting period. Without a reference date the period filter is inactive.
// @Tags reports
// @Accept json
// @Produce json
// @Param rt query string false "RT substring"
// @Param dusun query string false "Dusun substring, case-insensitive"
// @Param status query string false "Resident status (Hidup or Meninggal)"
// @Param period query string false "harian, mingguan, bulanan or tahunan (default bulanan)"
// @Param date query string false "Reference date (YYYY-MM-DD)"
// @Success 200 {object} utils.APIResponse{data=[]models.Resident} "Report retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid filter parameter"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/reports [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	criteria, err := parseCriteria(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid filter parameter", err)
		return
	}

	residents, err := h.reportService.GetReport(criteria)
	if err != nil {
		h.logger.WithError(err).Error("Failed to build report")
		utils.InternalServerErrorResponse(c, "Failed to build report", err)
		return
	}

	utils.SuccessResponse(c, "Report retrieved successfully", residents)
}

// ExportExcel handles GET /api/v1/reports/export/excel
// @Summary Export the filtered report as a spreadsheet
// @Tags reports
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param rt query string false "RT substring"
// @Param dusun query string false "Dusun substring, case-insensitive"
// @Param status query string false "Resident status (Hidup or Meninggal)"
// @Param period query string false "harian, mingguan, bulanan or tahunan"
// @Param date query string false "Reference date (YYYY-MM-DD)"
// @Success 200 {file} binary "xlsx file"
// @Failure 400 {object} utils.APIResponse "Invalid filter parameter"
// @Failure 500 {object} utils.APIResponse "Export failed"
// @Router /api/v1/reports/export/excel [get]
func (h *ReportHandler) ExportExcel(c *gin.Context) {
	criteria, err := parseCriteria(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid filter parameter", err)
		return
	}

	data, filename, err := h.reportService.ExportToExcel(criteria)
	if err != nil {
		h.logger.WithError(err).Error("Excel export failed")
		utils.InternalServerErrorResponse(c, "Gagal membuat file Excel. Silakan coba lagi.", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, excelContentType, data)
}

// ExportPDF handles GET /api/v1/reports/export/pdf
// @Summary Export the filtered report as a PDF document
// @Tags reports
// @Accept json
// @Produce application/pdf
// @Param rt query string false "RT substring"
// @Param dusun query string false "Dusun substring, case-insensitive"
// @Param status query string false "Resident status (Hidup or Meninggal)"
// @Param period query string false "harian, mingguan, bulanan or tahunan"
// @Param date query string false "Reference date (YYYY-MM-DD)"
// @Success 200 {file} binary "pdf file"
// @Failure 400 {object} utils.APIResponse "Invalid filter parameter"
// @Failure 500 {object} utils.APIResponse "Export failed"
// @Router /api/v1/reports/export/pdf [get]
func (h *ReportHandler) ExportPDF(c *gin.Context) {
	criteria, err := parseCriteria(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid filter parameter", err)
		return
	}

	data, filename, err := h.reportService.ExportToPDF(criteria)
	if err != nil {
		h.logger.WithError(err).Error("PDF export failed")
		utils.InternalServerErrorResponse(c, "Gagal membuat PDF. Silakan coba lagi.", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, pdfContentType, data)
}
