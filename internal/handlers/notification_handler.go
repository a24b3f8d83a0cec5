package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/easyevent/server/internal/models"
	"github.com/easyevent/server/internal/services"
)

func ListUnreadNotificationsHandler(ns *services.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		notifications, err := ns.ListUnread(c.Request.Context(), claims.UserID())
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(notifications, ""))
	}
}

func MarkNotificationReadHandler(ns *services.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		notification, err := ns.MarkRead(c.Request.Context(), claims.UserID(), c.Param("id"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(notification, "Notification marked as read"))
	}
}
