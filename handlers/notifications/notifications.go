package notifications

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"competition-portal-server/handlers/auth"
	"competition-portal-server/models"
	"competition-portal-server/notify"
	"competition-portal-server/utils"
)

// Handler carries the injected notification service.
type Handler struct {
	Notify *notify.Service
}

// GetInbox returns the authenticated user's notifications, materializing
// receipts on the way.
func (h *Handler) GetInbox(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	items, err := h.Notify.FetchForUser(audienceFor(user))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": items})
}

func (h *Handler) GetUnreadCount(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	count, err := h.Notify.UnreadCount(audienceFor(user))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread": count})
}

func (h *Handler) MarkRead(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	notificationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification id"})
		return
	}

	if err := h.Notify.MarkRead(user.ID, uint(notificationID)); err != nil {
		if errors.Is(err, notify.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notification read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked read"})
}

// CreateNotification authors a notification with a target specification.
// Admin only. Explicitly targeted users additionally get a best-effort
// push and email.
func (h *Handler) CreateNotification(c *gin.Context) {
	var input struct {
		Title              string   `json:"title" binding:"required"`
		Body               string   `json:"body" binding:"required"`
		TargetAll          *bool    `json:"target_all"`
		TargetAdminOnly    bool     `json:"target_admin_only"`
		TargetInstitutions []string `json:"target_institutions"`
		TargetUserIDs      []uint   `json:"target_user_ids"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data. A title and body are required."})
		return
	}

	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	notification, err := h.Notify.CreateNotification(notify.CreateInput{
		Title:              input.Title,
		Body:               input.Body,
		TargetAll:          input.TargetAll,
		TargetAdminOnly:    input.TargetAdminOnly,
		TargetInstitutions: input.TargetInstitutions,
		TargetUserIDs:      input.TargetUserIDs,
		CreatedByID:        &user.ID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create notification"})
		return
	}

	go deliverToTargets(notification)

	c.JSON(http.StatusCreated, gin.H{"notification": notification})
}

func (h *Handler) DeleteNotification(c *gin.Context) {
	notificationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification id"})
		return
	}

	if err := h.Notify.DeleteNotification(uint(notificationID)); err != nil {
		if errors.Is(err, notify.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted"})
}

func audienceFor(user models.User) notify.Audience {
	return notify.Audience{
		UserID:      user.ID,
		Institution: user.Institution,
		IsAdmin:     user.IsAdmin,
	}
}

// deliverToTargets sends push and email to explicitly targeted users.
func deliverToTargets(n *models.Notification) {
	if len(n.TargetUserIDs) == 0 {
		return
	}

	var users []models.User
	if err := utils.DB.Where("id IN ?", n.TargetUserIDs).Find(&users).Error; err != nil {
		log.Printf("Failed to load notification targets: %v", err)
		return
	}

	for _, user := range users {
		utils.SendPushNotification(user.PushToken, n.Title, n.Body)
		utils.SendNotificationEmail(user.Email, n.Title, n.Body)
	}
}
