package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roomify/services/report"
	"roomify/utils"
)

// ReportHandler exposes the admin dashboard summary.
type ReportHandler struct {
	Svc report.ReportService
}

// NewReportHandler creates a new ReportHandler instance.
func NewReportHandler(svc report.ReportService) *ReportHandler {
	return &ReportHandler{Svc: svc}
}

// GetSummary returns occupancy and revenue aggregates.
func (h *ReportHandler) GetSummary(c *gin.Context) {
	summary, err := h.Svc.GetSummary(c.Request.Context())
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}
	utils.JSONData(c, http.StatusOK, summary)
}
