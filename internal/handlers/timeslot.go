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

type TimeSlotHandler struct {
	log         *logger.Logger
	slotService services.TimeSlotService
}

func NewTimeSlotHandler(log *logger.Logger, slotService services.TimeSlotService) *TimeSlotHandler {
	return &TimeSlotHandler{
		log:         log.With("handler", "TimeSlotHandler"),
		slotService: slotService,
	}
}

// POST /api/timeslots
func (h *TimeSlotHandler) Create(c *gin.Context) {
	var slot types.TimeSlot
	if err := c.ShouldBindJSON(&slot); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	created, err := h.slotService.Create(c.Request.Context(), &slot)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GET /api/timeslots
func (h *TimeSlotHandler) List(c *gin.Context) {
	slots, err := h.slotService.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"timeSlots": slots})
}

// PUT /api/timeslots/:id
func (h *TimeSlotHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("invalid time slot id"))
		return
	}
	var slot types.TimeSlot
	if err := c.ShouldBindJSON(&slot); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	slot.ID = id
	updated, err := h.slotService.Update(c.Request.Context(), &slot)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, updated)
}

// DELETE /api/timeslots/:id
func (h *TimeSlotHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("invalid time slot id"))
		return
	}
	if err := h.slotService.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
