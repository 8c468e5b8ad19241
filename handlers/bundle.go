package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Availability and booking endpoints
	GetAvailabilityHandler   gin.HandlerFunc
	InitiateSessionHandler   gin.HandlerFunc
	ConfirmBookingHandler    gin.HandlerFunc
	RescheduleBookingHandler gin.HandlerFunc
	CancelBookingHandler     gin.HandlerFunc

	// Schedule management endpoints
	SetupWeeklyScheduleHandler   gin.HandlerFunc
	GetWeeklyScheduleHandler     gin.HandlerFunc
	CreateBlockedIntervalHandler gin.HandlerFunc
	ListBlockedIntervalsHandler  gin.HandlerFunc
	DeleteBlockedIntervalHandler gin.HandlerFunc

	// Notification endpoints
	ListNotificationsHandler gin.HandlerFunc
}
