package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MGmadhavan/medication-reminder-app/services/reminder-service/internal/check"
	"github.com/MGmadhavan/medication-reminder-app/services/reminder-service/internal/store"
)

// Handler carries the collaborators every route needs.
type Handler struct {
	checker    *check.Checker
	store      *store.Store
	log        *zap.Logger
	cronSecret string
}

func NewHandler(checker *check.Checker, st *store.Store, log *zap.Logger, cronSecret string) *Handler {
	return &Handler{
		checker:    checker,
		store:      st,
		log:        log,
		cronSecret: cronSecret,
	}
}

// NewRouter builds the gin engine with all routes registered. The two cron
// trigger endpoints sit behind the shared-secret check; everything else is
// open (authentication of end users is owned by an external provider).
func NewRouter(h *Handler) *gin.Engine {
	r := gin.Default()
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method not allowed"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		cron := api.Group("")
		cron.Use(h.requireCronToken())
		{
			cron.POST("/check-medications", h.handleMissedCheck)
			cron.POST("/send-reminders", h.handleReminderCheck)
		}

		api.GET("/users/:id/medications", h.handleListMedications)
		api.POST("/users/:id/medications", h.handleCreateMedication)
		api.DELETE("/medications/:id", h.handleDeleteMedication)
		api.POST("/medications/:id/taken", h.handleMarkTaken)
		api.GET("/users/:id/logs", h.handleListLogs)
		api.GET("/users/:id/profile", h.handleGetProfile)
		api.PUT("/users/:id/profile", h.handleUpdateProfile)
	}

	return r
}

// requireCronToken rejects trigger calls without the configured shared
// secret in the X-Cron-Token header. Rejection happens before any side
// effect.
func (h *Handler) requireCronToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.cronSecret == "" || c.GetHeader("X-Cron-Token") != h.cronSecret {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.Next()
	}
}
