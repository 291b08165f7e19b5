package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/studivo/studivo-backend/internal/logger"
	"github.com/studivo/studivo-backend/internal/services"
	"github.com/studivo/studivo-backend/internal/types"
)

type ModuleHandler struct {
	log           *logger.Logger
	moduleService services.ModuleService
}

func NewModuleHandler(log *logger.Logger, moduleService services.ModuleService) *ModuleHandler {
	return &ModuleHandler{
		log:           log.With("handler", "ModuleHandler"),
		moduleService: moduleService,
	}
}

// POST /api/modules
func (h *ModuleHandler) Create(c *gin.Context) {
	var module types.Module
	if err := c.ShouldBindJSON(&module); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	created, err := h.moduleService.Create(c.Request.Context(), &module)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GET /api/modules
func (h *ModuleHandler) List(c *gin.Context) {
	modules, err := h.moduleService.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"modules": modules})
}

// GET /api/modules/:id
func (h *ModuleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("invalid module id"))
		return
	}
	module, err := h.moduleService.Get(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, module)
}

// PUT /api/modules/:id
func (h *ModuleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("invalid module id"))
		return
	}
	var module types.Module
	if err := c.ShouldBindJSON(&module); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	module.ID = id
	updated, err := h.moduleService.Update(c.Request.Context(), &module)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, updated)
}

// DELETE /api/modules/:id
func (h *ModuleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("invalid module id"))
		return
	}
	if err := h.moduleService.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/modules/:id/assessments
func (h *ModuleHandler) AddAssessment(c *gin.Context) {
	moduleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("invalid module id"))
		return
	}
	var a types.Assessment
	if err := c.ShouldBindJSON(&a); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	created, err := h.moduleService.AddAssessment(c.Request.Context(), moduleID, &a)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/assessments/:id
func (h *ModuleHandler) UpdateAssessment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("invalid assessment id"))
		return
	}
	var a types.Assessment
	if err := c.ShouldBindJSON(&a); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	updated, err := h.moduleService.UpdateAssessment(c.Request.Context(), id, &a)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, updated)
}

// DELETE /api/assessments/:id
func (h *ModuleHandler) DeleteAssessment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("invalid assessment id"))
		return
	}
	if err := h.moduleService.DeleteAssessment(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
