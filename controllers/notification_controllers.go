package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/neo-dine/services"
	"github.com/yeremiapane/neo-dine/utils"
)

type NotificationController struct {
	Notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{Notifications: notifications}
}

// GetAllNotifications -> toast yang belum expired
func (nc *NotificationController) GetAllNotifications(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "All notifications", nc.Notifications.List(utils.VisitorID(c)))
}

// DeleteNotification
func (nc *NotificationController) DeleteNotification(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("notif_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid notif_id"))
		return
	}

	if !nc.Notifications.Dismiss(utils.VisitorID(c), id) {
		utils.RespondError(c, http.StatusNotFound, errors.New("notification not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notification deleted", gin.H{"notif_id": id})
}
