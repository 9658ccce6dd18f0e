package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roomify/models"
	"roomify/services/staff"
	"roomify/utils"
)

// StaffHandler exposes the staff directory and attendance endpoints.
type StaffHandler struct {
	Svc    staff.StaffService
	Logger *zap.Logger
}

// NewStaffHandler creates a new StaffHandler instance.
func NewStaffHandler(svc staff.StaffService, logger *zap.Logger) *StaffHandler {
	return &StaffHandler{Svc: svc, Logger: logger}
}

func (h *StaffHandler) GetAllStaff(c *gin.Context) {
	records, err := h.Svc.GetAllStaff(c.Request.Context())
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}
	utils.JSONData(c, http.StatusOK, records)
}

func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req staff.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input: "+err.Error())
		return
	}

	created, err := h.Svc.CreateStaff(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}

	h.Logger.Info("staff member created", zap.String("staffId", created.ID))
	utils.JSONData(c, http.StatusCreated, created)
}

func (h *StaffHandler) GetStaff(c *gin.Context) {
	record, err := h.Svc.GetStaffByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}
	utils.JSONData(c, http.StatusOK, record)
}

func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	var req models.Staff
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input: "+err.Error())
		return
	}

	updated, err := h.Svc.UpdateStaff(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}
	utils.JSONData(c, http.StatusOK, updated)
}

func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.DeleteStaff(c.Request.Context(), id); err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}

	h.Logger.Info("staff member deleted", zap.String("staffId", id))
	utils.JSONMessage(c, http.StatusOK, "staff member deleted")
}

// MarkAttendance records (or overwrites) attendance for a staff member on a day.
func (h *StaffHandler) MarkAttendance(c *gin.Context) {
	var att models.Attendance
	if err := c.ShouldBindJSON(&att); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input: "+err.Error())
		return
	}
	att.StaffID = c.Param("id")

	recorded, err := h.Svc.MarkAttendance(c.Request.Context(), att)
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}
	utils.JSONData(c, http.StatusCreated, recorded)
}

// GetStaffAttendance lists attendance records for one staff member.
func (h *StaffHandler) GetStaffAttendance(c *gin.Context) {
	records, err := h.Svc.GetAttendanceByStaff(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}
	utils.JSONData(c, http.StatusOK, records)
}

// GetAttendanceByDate lists attendance for all staff on a given day.
func (h *StaffHandler) GetAttendanceByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "date query parameter is required")
		return
	}

	records, err := h.Svc.GetAttendanceByDate(c.Request.Context(), date)
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}
	utils.JSONData(c, http.StatusOK, records)
}
