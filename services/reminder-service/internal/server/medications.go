package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MGmadhavan/medication-reminder-app/internal/models"
	"github.com/MGmadhavan/medication-reminder-app/services/reminder-service/internal/check"
	"github.com/MGmadhavan/medication-reminder-app/services/reminder-service/internal/store"
)

type createMedicationRequest struct {
	Name   string `json:"name" binding:"required"`
	Dosage string `json:"dosage" binding:"required"`
	Time   string `json:"time" binding:"required"`
}

type markTakenRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Date   string `json:"date"` // defaults to today
}

type updateProfileRequest struct {
	Email          string `json:"email" binding:"required"`
	FullName       string `json:"full_name"`
	CaretakerEmail string `json:"caretaker_email"`
}

func (h *Handler) handleListMedications(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	meds, err := h.store.ListMedications(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("failed to list medications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if meds == nil {
		meds = []models.Medication{}
	}

	c.JSON(http.StatusOK, meds)
}

func (h *Handler) handleCreateMedication(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var req createMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, dosage and time are required"})
		return
	}
	if _, err := check.ParseClockTime(req.Time); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	med, err := h.store.CreateMedication(c.Request.Context(), userID, req.Name, req.Dosage, req.Time)
	if err != nil {
		h.log.Error("failed to create medication", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, med)
}

func (h *Handler) handleDeleteMedication(c *gin.Context) {
	medID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid medication id"})
		return
	}

	if err := h.store.DeleteMedication(c.Request.Context(), medID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "medication not found"})
			return
		}
		h.log.Error("failed to delete medication", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) handleMarkTaken(c *gin.Context) {
	medID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid medication id"})
		return
	}

	var req markTakenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return
	}
	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	logEntry, err := h.store.MarkTaken(c.Request.Context(), userID, medID, date)
	if err != nil {
		h.log.Error("failed to mark medication taken", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, logEntry)
}

func (h *Handler) handleListLogs(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	logs, err := h.store.LogsForDate(c.Request.Context(), userID, date)
	if err != nil {
		h.log.Error("failed to list medication logs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if logs == nil {
		logs = []models.MedicationLog{}
	}

	c.JSON(http.StatusOK, logs)
}

func (h *Handler) handleGetProfile(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	profile, err := h.store.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		h.log.Error("failed to get profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *Handler) handleUpdateProfile(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	profile := models.Profile{
		ID:             userID,
		Email:          req.Email,
		FullName:       req.FullName,
		CaretakerEmail: req.CaretakerEmail,
	}
	if err := h.store.UpsertProfile(c.Request.Context(), profile); err != nil {
		h.log.Error("failed to update profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}
