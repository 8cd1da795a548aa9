package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MGmadhavan/medication-reminder-app/services/reminder-service/internal/check"
)

// handleMissedCheck runs the missed-alert pipeline. Partial dispatch
// failures still complete with 200; only a fetch failure is a 500.
func (h *Handler) handleMissedCheck(c *gin.Context) {
	res, err := h.checker.Run(c.Request.Context(), check.ModeMissed, time.Now())
	if err != nil {
		h.log.Error("missed medication check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": res.Message,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           res.Success,
		"message":           res.Message,
		"emailsSent":        res.EmailsSent,
		"missedMedications": res.Matched,
	})
}

// handleReminderCheck runs the immediate-reminder pipeline.
func (h *Handler) handleReminderCheck(c *gin.Context) {
	res, err := h.checker.Run(c.Request.Context(), check.ModeImmediate, time.Now())
	if err != nil {
		h.log.Error("immediate reminder check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": res.Message,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            res.Success,
		"message":            res.Message,
		"emailsSent":         res.EmailsSent,
		"medicationsChecked": res.Matched,
	})
}
