package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studivo/studivo-backend/internal/logger"
	"github.com/studivo/studivo-backend/internal/services"
)

type ExportHandler struct {
	log           *logger.Logger
	exportService services.ExportService
}

func NewExportHandler(log *logger.Logger, exportService services.ExportService) *ExportHandler {
	return &ExportHandler{
		log:           log.With("handler", "ExportHandler"),
		exportService: exportService,
	}
}

// GET /api/plan/export/csv
func (h *ExportHandler) PlanCSV(c *gin.Context) {
	out, err := h.exportService.PlanCSV(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="lernplan.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", out)
}

// GET /api/plan/export/json
func (h *ExportHandler) PlanJSON(c *gin.Context) {
	out, err := h.exportService.PlanJSON(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="lernplan.json"`)
	c.Data(http.StatusOK, "application/json", out)
}

// GET /api/export/modules
func (h *ExportHandler) ModulesJSON(c *gin.Context) {
	out, err := h.exportService.ModulesJSON(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="module.json"`)
	c.Data(http.StatusOK, "application/json", out)
}
