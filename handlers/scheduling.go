package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"dentora/config"
	"dentora/models"
	"dentora/services/scheduling"
	"dentora/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SchedulingHandler exposes the availability and booking endpoints.
type SchedulingHandler struct {
	Service scheduling.SchedulingService
	Cache   *redis.Client
}

// NewSchedulingHandler constructs a SchedulingHandler.
func NewSchedulingHandler(service scheduling.SchedulingService, cache *redis.Client) *SchedulingHandler {
	return &SchedulingHandler{Service: service, Cache: cache}
}

// GetAvailabilityHandler returns the bookable slots for a provider and date.
func (h *SchedulingHandler) GetAvailabilityHandler(c *gin.Context) {
	providerID := c.Query("providerId")
	date := c.Query("date")
	duration, err := strconv.Atoi(c.DefaultQuery("duration", "30"))
	if providerID == "" || date == "" || err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid availability query", "providerId, date and numeric duration are required")
		return
	}

	result, svcErr := h.Service.ListAvailableSlots(providerID, date, duration, time.Now())
	if svcErr != nil {
		respondEngineError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, result)
}

// InitiateSessionHandler starts a booking session: it computes availability
// and caches a short-lived session envelope in Redis. The envelope carries no
// slot data; confirmation always re-validates against fresh state.
func (h *SchedulingHandler) InitiateSessionHandler(c *gin.Context) {
	var req models.SlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking session request", err.Error())
		return
	}

	result, err := h.Service.ListAvailableSlots(req.ProviderID, req.Date, req.DurationMinutes, time.Now())
	if err != nil {
		respondEngineError(c, err)
		return
	}

	session := models.BookingSession{
		ProviderID:      req.ProviderID,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		CreatedAt:       time.Now(),
	}
	sessionID := uuid.New().String()
	sessionData, err := json.Marshal(session)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking session", err.Error())
		return
	}

	ttl := time.Duration(config.AppConfig.SessionTTLMin) * time.Minute
	ctx := context.Background()
	if err := h.Cache.Set(ctx, utils.BookingSessionPrefix+sessionID, sessionData, ttl).Err(); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to cache booking session", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID":     sessionID,
		"slots":         result.Slots,
		"scheduleError": result.ScheduleError,
	})
}

// ConfirmBookingHandler commits a slot chosen within a session. The engine
// re-validates against a fresh snapshot; a stale session or a lost race
// surfaces as a typed rejection, never as a silently double-booked slot.
func (h *SchedulingHandler) ConfirmBookingHandler(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking confirmation", err.Error())
		return
	}

	ctx := context.Background()
	sessionData, err := h.Cache.Get(ctx, utils.BookingSessionPrefix+input.SessionID).Result()
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Booking session not found or expired", "")
		return
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(sessionData), &session); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to parse booking session", err.Error())
		return
	}

	appointment, err := h.Service.Book(c.Request.Context(), scheduling.BookSlotRequest{
		ProviderID:      session.ProviderID,
		PatientID:       input.PatientID,
		Date:            session.Date,
		StartTime:       input.StartTime,
		DurationMinutes: session.DurationMinutes,
		Now:             time.Now(),
	})
	if err != nil {
		respondEngineError(c, err)
		return
	}

	h.Cache.Del(ctx, utils.BookingSessionPrefix+input.SessionID)
	c.JSON(http.StatusCreated, gin.H{"appointment": appointment})
}

// RescheduleBookingHandler moves an appointment, applying the late-change fee
// when the request lands inside the fee window before the original start.
func (h *SchedulingHandler) RescheduleBookingHandler(c *gin.Context) {
	var rc models.RescheduleContext
	if err := c.ShouldBindJSON(&rc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reschedule request", err.Error())
		return
	}
	rc.Now = time.Now()

	result, err := h.Service.Reschedule(c.Request.Context(), rc)
	if err != nil {
		if result != nil {
			// Appointment moved but fee collection failed; report both.
			c.JSON(http.StatusAccepted, gin.H{
				"appointment":  result.Appointment,
				"fee":          result.Fee,
				"billingError": err.Error(),
			})
			return
		}
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CancelBookingHandler cancels an appointment, freeing its slot immediately.
func (h *SchedulingHandler) CancelBookingHandler(c *gin.Context) {
	appointmentID := c.Param("id")
	if appointmentID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing appointment ID", "")
		return
	}
	if err := h.Service.CancelBooking(c.Request.Context(), appointmentID); err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}

// respondEngineError maps engine errors to HTTP responses. Rejections are
// expected, user-facing outcomes with a reason code the client can branch on;
// configuration errors indicate corrupt upstream data.
func respondEngineError(c *gin.Context, err error) {
	if rej, ok := scheduling.AsRejection(err); ok {
		status := http.StatusConflict
		switch rej.Reason {
		case scheduling.ReasonInvalidDuration:
			status = http.StatusBadRequest
		case scheduling.ReasonProviderNotWorking, scheduling.ReasonLeadTimeViolation:
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"reason": rej.Reason, "message": rej.Message})
		return
	}
	if scheduling.IsConfigurationError(err) {
		utils.GetLogger().Error("schedule data corrupt", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Schedule configuration error", err.Error())
		return
	}
	utils.GetLogger().Error("scheduling request failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "Scheduling request failed", err.Error())
}
