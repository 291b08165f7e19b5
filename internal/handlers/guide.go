package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/studivo/studivo-backend/internal/logger"
	"github.com/studivo/studivo-backend/internal/planner"
	"github.com/studivo/studivo-backend/internal/services"
)

type GuideHandler struct {
	log         *logger.Logger
	weekService services.WeekPlanService
}

func NewGuideHandler(log *logger.Logger, weekService services.WeekPlanService) *GuideHandler {
	return &GuideHandler{
		log:         log.With("handler", "GuideHandler"),
		weekService: weekService,
	}
}

type elaborateRequest struct {
	WeekStart string `json:"weekStart" binding:"required"`
}

// POST /api/plan/weeks/elaborate
func (h *GuideHandler) ElaborateWeek(c *gin.Context) {
	var req elaborateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	weekStart, err := time.Parse(planner.DateLayout, req.WeekStart)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_date",
			fmt.Errorf("weekStart must be %s", planner.DateLayout))
		return
	}

	result, err := h.weekService.ElaborateWeek(c.Request.Context(), weekStart)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

// GET /api/sessions/:id/guide
func (h *GuideHandler) GetGuide(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("invalid session id"))
		return
	}
	guide, ok, err := h.weekService.GetGuide(c.Request.Context(), sessionID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	if !ok {
		RespondError(c, http.StatusNotFound, "guide_not_found",
			fmt.Errorf("no guide for session %s", sessionID))
		return
	}
	RespondOK(c, guide)
}

// GET /api/guides
func (h *GuideHandler) ListGuides(c *gin.Context) {
	guides, err := h.weekService.ListGuides(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"guides": guides})
}

// DELETE /api/sessions/:id/guide
func (h *GuideHandler) DeleteGuide(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("invalid session id"))
		return
	}
	if err := h.weekService.DeleteGuide(c.Request.Context(), sessionID); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/guides
func (h *GuideHandler) DeleteAllGuides(c *gin.Context) {
	if err := h.weekService.DeleteAllGuides(c.Request.Context()); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
