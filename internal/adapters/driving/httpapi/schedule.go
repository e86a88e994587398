package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
)

// respondError maps a service error to an HTTP status and JSON body.
// The response carries the domain error text; callers such as Home
// Assistant shell commands surface it directly.
func (h *Handler) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidSchedule),
		errors.Is(err, domain.ErrUnknownProfile):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownNode):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrAuthRequired),
		errors.Is(err, domain.ErrReauthRequired):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrSubmissionFailed),
		errors.Is(err, domain.ErrTokenRefreshFailed):
		status = http.StatusBadGateway
	}

	if h.log != nil && status >= http.StatusInternalServerError {
		h.log.Errorf("Bridge request failed: %v", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func (h *Handler) setDaySchedule(c *gin.Context) {
	var req domain.SetDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return
	}

	result, err := h.services.Schedule.SetDaySchedule(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
