package handler

import (
	"errors"
	"net/http"
	"strings"

	"hospital-directory-backend/internal/models"
	"hospital-directory-backend/internal/service"
	"hospital-directory-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HospitalHandler struct {
	hospitalService *service.HospitalService
}

func NewHospitalHandler(hospitalService *service.HospitalService) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
	}
}

// StatusRequest is the body of the status-toggle endpoint. OpenNow is a
// pointer so that an explicit false still binds while a missing field fails.
type StatusRequest struct {
	OpenNow *bool `json:"openNow" binding:"required"`
}

// GetAllHospitals returns every hospital record, newest first
func (h *HospitalHandler) GetAllHospitals(c *gin.Context) {
	hospitals, err := h.hospitalService.ListHospitals(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch hospitals")
		return
	}

	utils.SuccessResponse(c, hospitals)
}

// CreateHospital creates a new hospital record
func (h *HospitalHandler) CreateHospital(c *gin.Context) {
	var input models.HospitalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	hospital, err := h.hospitalService.CreateHospital(c.Request.Context(), input)
	if err != nil {
		h.writeHospitalError(c, err, "Failed to create hospital")
		return
	}

	utils.CreatedResponse(c, hospital)
}

// UpdateHospital replaces all mutable fields of an existing record
func (h *HospitalHandler) UpdateHospital(c *gin.Context) {
	id := c.Param("id")

	var input models.HospitalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	hospital, err := h.hospitalService.UpdateHospital(c.Request.Context(), id, input)
	if err != nil {
		h.writeHospitalError(c, err, "Failed to update hospital")
		return
	}

	utils.SuccessResponse(c, hospital)
}

// UpdateStatus flips only the openNow flag of an existing record
func (h *HospitalHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: openNow is required")
		return
	}

	hospital, err := h.hospitalService.SetStatus(c.Request.Context(), id, *req.OpenNow)
	if err != nil {
		h.writeHospitalError(c, err, "Failed to update status")
		return
	}

	utils.SuccessResponse(c, hospital)
}

// DeleteHospital removes a hospital record
func (h *HospitalHandler) DeleteHospital(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Hospital ID is required")
		return
	}

	if err := h.hospitalService.DeleteHospital(c.Request.Context(), id); err != nil {
		h.writeHospitalError(c, err, "Failed to delete hospital")
		return
	}

	utils.MessageResponse(c, "Hospital deleted successfully")
}

// writeHospitalError maps service errors to the envelope: validation with
// field details, conflict, not found, and a generic 500 that never leaks
// store internals.
func (h *HospitalHandler) writeHospitalError(c *gin.Context, err error, fallback string) {
	var verrs models.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		utils.ValidationErrorResponse(c, verrs)
	case errors.Is(err, models.ErrDuplicateHospital):
		utils.ErrorResponse(c, http.StatusConflict, models.ErrDuplicateHospital.Error())
	case errors.Is(err, models.ErrHospitalNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, models.ErrHospitalNotFound.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, fallback)
	}
}
