package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
)

// profileView is the wire form of one named profile.
type profileView struct {
	Name     string             `json:"name"`
	Schedule domain.DaySchedule `json:"schedule"`
}

func (h *Handler) listProfiles(c *gin.Context) {
	set, err := h.services.Profiles.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	names := set.Names()
	profiles := make([]profileView, 0, len(names))
	for i := 0; i < len(names); i++ {
		profiles = append(profiles, profileView{
			Name:     names[i],
			Schedule: set[names[i]],
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"source":   h.services.Profiles.Path(),
		"profiles": profiles,
	})
}
