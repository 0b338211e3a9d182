package handler

import (
	"errors"

	"sipm-be-svc/internal/service"
	"sipm-be-svc/pkg/logger"
	"sipm-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ResidentHandler handles resident registry HTTP requests
type ResidentHandler struct {
	residentService service.ResidentService
	logger          *logger.Logger
}

// NewResidentHandler creates a new resident handler
func NewResidentHandler(residentService service.ResidentService, logger *logger.Logger) *ResidentHandler {
	return &ResidentHandler{
		residentService: residentService,
		logger:          logger,
	}
}

// ListResidents handles GET /api/v1/residents
// @Summary List residents
// @Description Get the resident collection in storage order, optionally narrowed by a name or NIK search term
// @Tags residents
// @Accept json
// @Produce json
// @Param search query string false "Name (case-insensitive) or NIK substring"
// @Success 200 {object} utils.APIResponse{data=[]models.Resident} "Residents retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents [get]
func (h *ResidentHandler) ListResidents(c *gin.Context) {
	residents, err := h.residentService.ListResidents(c.Query("search"))
	if err != nil {
		h.logger.WithError(err).Error("Failed to list residents")
		utils.InternalServerErrorResponse(c, "Failed to list residents", err)
		return
	}

	utils.SuccessResponse(c, "Residents retrieved successfully", residents)
}

// GetResident handles GET /api/v1/residents/:id
// @Summary Get one resident
// @Tags residents
// @Accept json
// @Produce json
// @Param id path string true "Resident ID"
// @Success 200 {object} utils.APIResponse{data=models.Resident} "Resident retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Resident not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents/{id} [get]
func (h *ResidentHandler) GetResident(c *gin.Context) {
	resident, err := h.residentService.GetResidentByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrResidentNotFound) {
			utils.NotFoundResponse(c, "Resident not found")
			return
		}
		h.logger.WithError(err).WithField("id", c.Param("id")).Error("Failed to get resident")
		utils.InternalServerErrorResponse(c, "Failed to get resident", err)
		return
	}

	utils.SuccessResponse(c, "Resident retrieved successfully", resident)
}

// CreateResident handles POST /api/v1/residents
// @Summary Create a resident
// @Description Validate and persist a new resident record. The NIK must be 16 digits and unique; a deceased resident must carry a death certificate image.
// @Tags residents
// @Accept json
// @Produce json
// @Param request body service.ResidentInput true "Resident fields"
// @Success 201 {object} utils.APIResponse{data=models.Resident} "Resident created successfully"
// @Failure 400 {object} utils.APIResponse "Validation failed"
// @Failure 409 {object} utils.APIResponse "NIK already registered"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents [post]
func (h *ResidentHandler) CreateResident(c *gin.Context) {
	var input service.ResidentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.WithError(err).Error("Invalid resident request body")
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	resident, err := h.residentService.CreateResident(input)
	if err != nil {
		switch {
		case service.IsValidationError(err):
			utils.BadRequestResponse(c, "Validation failed", err)
		case errors.Is(err, service.ErrNIKExists):
			utils.ConflictResponse(c, "NIK already registered", err)
		default:
			h.logger.WithError(err).Error("Failed to create resident")
			utils.InternalServerErrorResponse(c, "Failed to create resident", err)
		}
		return
	}

	utils.CreatedResponse(c, "Resident created successfully", resident)
}

// UpdateResident handles PUT /api/v1/residents/:id
// @Summary Update a resident
// @Description Merge the given fields over the stored record. The id and creation timestamp are immutable.
// @Tags residents
// @Accept json
// @Produce json
// @Param id path string true "Resident ID"
// @Param request body service.ResidentUpdateInput true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=models.Resident} "Resident updated successfully"
// @Failure 400 {object} utils.APIResponse "Validation failed"
// @Failure 404 {object} utils.APIResponse "Resident not found"
// @Failure 409 {object} utils.APIResponse "NIK already registered"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents/{id} [put]
func (h *ResidentHandler) UpdateResident(c *gin.Context) {
	var input service.ResidentUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.WithError(err).Error("Invalid resident request body")
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	resident, err := h.residentService.UpdateResident(c.Param("id"), input)
	if err != nil {
		switch {
		case service.IsValidationError(err):
			utils.BadRequestResponse(c, "Validation failed", err)
		case errors.Is(err, service.ErrNIKExists):
			utils.ConflictResponse(c, "NIK already registered", err)
		case errors.Is(err, service.ErrResidentNotFound):
			utils.NotFoundResponse(c, "Resident not found")
		default:
			h.logger.WithError(err).WithField("id", c.Param("id")).Error("Failed to update resident")
			utils.InternalServerErrorResponse(c, "Failed to update resident", err)
		}
		return
	}

	utils.SuccessResponse(c, "Resident updated successfully", resident)
}

// DeleteResident handles DELETE /api/v1/residents/:id
// @Summary Delete a resident
// @Description Remove the record with the given id. Deleting a missing id is a no-op.
// @Tags residents
// @Accept json
// @Produce json
// @Param id path string true "Resident ID"
// @Success 200 {object} utils.APIResponse "Resident deleted"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents/{id} [delete]
func (h *ResidentHandler) DeleteResident(c *gin.Context) {
	if err := h.residentService.DeleteResident(c.Param("id")); err != nil {
		h.logger.WithError(err).WithField("id", c.Param("id")).Error("Failed to delete resident")
		utils.InternalServerErrorResponse(c, "Failed to delete resident", err)
		return
	}

	utils.SuccessResponse(c, "Resident deleted", nil)
}

// CheckNIK handles GET /api/v1/residents/check-nik
// @Summary Check NIK availability
// @Description Report whether a NIK is already used by a resident other than exclude_id
// @Tags residents
// @Accept json
// @Produce json
// @Param nik query string true "16-digit NIK"
// @Param exclude_id query string false "Resident ID to exclude from the check"
// @Success 200 {object} utils.APIResponse "NIK checked"
// @Failure 400 {object} utils.APIResponse "NIK parameter missing"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents/check-nik [get]
func (h *ResidentHandler) CheckNIK(c *gin.Context) {
	nik := c.Query("nik")
	if nik == "" {
		utils.BadRequestResponse(c, "NIK parameter is required", nil)
		return
	}

	exists, err := h.residentService.NikExists(nik, c.Query("exclude_id"))
	if err != nil {
		h.logger.WithError(err).WithField("nik", nik).Error("Failed to check NIK")
		utils.InternalServerErrorResponse(c, "Failed to check NIK", err)
		return
	}

	utils.SuccessResponse(c, "NIK checked", gin.H{"nik": nik, "exists": exists})
}
