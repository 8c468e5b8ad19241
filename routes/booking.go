package routes

import (
	"dentora/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the scheduling engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.GET("/availability", hb.GetAvailabilityHandler)
		bookingGroup.POST("/session", hb.InitiateSessionHandler)
		bookingGroup.POST("/confirm", hb.ConfirmBookingHandler)
		bookingGroup.PATCH("/reschedule", hb.RescheduleBookingHandler)
		bookingGroup.DELETE("/:id", hb.CancelBookingHandler)
	}
}
