package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) tokenStatus(c *gin.Context) {
	status, err := h.services.Auth.Status(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

func (h *Handler) refreshToken(c *gin.Context) {
	status, err := h.services.Auth.RefreshToken(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
