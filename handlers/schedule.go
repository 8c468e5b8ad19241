package handlers

import (
	"net/http"
	"time"

	scheduleRepo "dentora/database/repository/schedule"
	"dentora/models"
	"dentora/services/scheduling"
	"dentora/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScheduleHandler exposes the provider-facing schedule management endpoints:
// the recurring weekly pattern and one-off blocked intervals.
type ScheduleHandler struct {
	Repo scheduleRepo.ScheduleRepository
}

func NewScheduleHandler(repo scheduleRepo.ScheduleRepository) *ScheduleHandler {
	return &ScheduleHandler{Repo: repo}
}

// SetupWeeklyScheduleHandler replaces a provider's weekly schedule.
func (h *ScheduleHandler) SetupWeeklyScheduleHandler(c *gin.Context) {
	providerID := c.Param("providerId")
	var req models.SetupScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid schedule payload", err.Error())
		return
	}
	if err := scheduling.ValidateWeeklySchedule(req.Days); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid weekly schedule", err.Error())
		return
	}

	schedule := &models.WeeklySchedule{
		ProviderID: providerID,
		Days:       req.Days,
		UpdatedAt:  time.Now(),
	}
	if err := h.Repo.UpsertWeeklySchedule(schedule); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// GetWeeklyScheduleHandler returns a provider's weekly schedule.
func (h *ScheduleHandler) GetWeeklyScheduleHandler(c *gin.Context) {
	providerID := c.Param("providerId")
	schedule, err := h.Repo.GetWeeklySchedule(providerID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Schedule not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// CreateBlockedIntervalHandler records a one-off unavailability: a full-day
// closure or a timed range within one or more days.
func (h *ScheduleHandler) CreateBlockedIntervalHandler(c *gin.Context) {
	providerID := c.Param("providerId")
	var req models.CreateBlockedIntervalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid blocked interval payload", err.Error())
		return
	}

	block := models.BlockedInterval{
		ID:         uuid.New().String(),
		ProviderID: providerID,
		Kind:       req.Kind,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Reason:     req.Reason,
		CreatedAt:  time.Now(),
	}
	if err := scheduling.ValidateBlockedInterval(block); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid blocked interval", err.Error())
		return
	}
	if err := h.Repo.CreateBlockedInterval(&block); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save blocked interval", err.Error())
		return
	}
	c.JSON(http.StatusCreated, block)
}

// ListBlockedIntervalsHandler returns all blocked intervals for a provider.
func (h *ScheduleHandler) ListBlockedIntervalsHandler(c *gin.Context) {
	providerID := c.Param("providerId")
	blocks, err := h.Repo.ListBlockedIntervals(providerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list blocked intervals", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"blocks": blocks})
}

// DeleteBlockedIntervalHandler removes a blocked interval.
func (h *ScheduleHandler) DeleteBlockedIntervalHandler(c *gin.Context) {
	providerID := c.Param("providerId")
	blockID := c.Param("blockId")
	if err := h.Repo.DeleteBlockedInterval(providerID, blockID); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Blocked interval not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blocked interval removed"})
}
