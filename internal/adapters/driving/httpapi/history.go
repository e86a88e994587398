package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
)

func (h *Handler) listHistory(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	records, err := h.services.History.Recent(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if records == nil {
		records = []domain.SubmissionRecord{}
	}

	c.JSON(http.StatusOK, gin.H{
		"count":       len(records),
		"submissions": records,
	})
}
