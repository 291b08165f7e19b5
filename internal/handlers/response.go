package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studivo/studivo-backend/internal/planner"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondServiceError maps the planner's failure kinds onto statuses.
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrNoModules):
		RespondError(c, http.StatusConflict, "no_modules", err)
	case errors.Is(err, planner.ErrNoTimeSlots):
		RespondError(c, http.StatusConflict, "no_time_slots", err)
	case errors.Is(err, planner.ErrMissingAPIKey):
		RespondError(c, http.StatusServiceUnavailable, "missing_api_key", err)
	case errors.Is(err, planner.ErrGenerationFailed):
		RespondError(c, http.StatusBadGateway, "generation_failed", err)
	case errors.Is(err, planner.ErrNoValidGuides):
		RespondError(c, http.StatusBadGateway, "no_valid_guides", err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	default:
		RespondError(c, http.StatusBadRequest, "bad_request", err)
	}
}
