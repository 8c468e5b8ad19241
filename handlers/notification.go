package handlers

import (
	"net/http"

	notificationRepo "dentora/database/repository/notification"
	"dentora/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the stored notification feed.
type NotificationHandler struct {
	Repo notificationRepo.NotificationRepository
}

func NewNotificationHandler(repo notificationRepo.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{Repo: repo}
}

// ListNotificationsHandler returns a recipient's notifications, newest first.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	recipientID := c.Param("recipientId")
	notifications, err := h.Repo.ListByRecipient(recipientID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list notifications", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}
