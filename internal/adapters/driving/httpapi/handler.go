package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driving"
	"github.com/rrwood/hive-schedule-mgr/internal/logger"
)

// Services bundles the driving ports the bridge exposes.
type Services struct {
	Schedule driving.ScheduleService
	Auth     driving.AuthService
	Profiles driving.ProfileCatalog
	History  driving.HistoryService
}

// Handler holds the service layer and translates HTTP to service calls.
type Handler struct {
	services Services
	token    string
	log      *logger.Logger
}

// NewHandler builds a Handler. token, when non-empty, is required from
// callers on every /api/v1 route.
func NewHandler(services Services, token string, log *logger.Logger) *Handler {
	return &Handler{
		services: services,
		token:    token,
		log:      log,
	}
}

// InitRoutes constructs the gin engine with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", h.health)

	api := router.Group("/api/v1", h.bearerAuthMiddleware)
	{
		schedule := api.Group("/schedule")
		{
			schedule.POST("/day", h.setDaySchedule)
		}

		token := api.Group("/token")
		{
			token.GET("", h.tokenStatus)
			token.POST("/refresh", h.refreshToken)
		}

		api.GET("/profiles", h.listProfiles)
		api.GET("/history", h.listHistory)
	}

	return router
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
