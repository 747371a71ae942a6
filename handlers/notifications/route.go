package notifications

import (
	"github.com/gin-gonic/gin"

	"competition-portal-server/handlers/auth"
	"competition-portal-server/notify"
)

func RegisterNotificationsRoutes(protected *gin.RouterGroup, svc *notify.Service) {
	h := &Handler{Notify: svc}

	protected.GET("/notifications", h.GetInbox)
	protected.GET("/notifications/unread-count", h.GetUnreadCount)
	protected.POST("/notifications/:id/read", h.MarkRead)

	admin := protected.Group("/")
	admin.Use(auth.AdminRequired())
	{
		admin.POST("/notifications", h.CreateNotification)
		admin.DELETE("/notifications/:id", h.DeleteNotification)
	}
}
