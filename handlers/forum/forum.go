package forum

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"competition-portal-server/handlers/auth"
	"competition-portal-server/models"
	"competition-portal-server/moderation"
	"competition-portal-server/notify"
	"competition-portal-server/utils"
)

// Handler carries the notification service so new posts can alert admins.
type Handler struct {
	Notify *notify.Service
}

func (h *Handler) GetPosts(c *gin.Context) {
	var posts []models.ForumPost
	if err := utils.DB.Order("created_at DESC").Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *Handler) GetPost(c *gin.Context) {
	var post models.ForumPost
	if err := utils.DB.First(&post, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var comments []models.ForumComment
	if err := utils.DB.Where("post_id = ?", post.ID).Order("created_at ASC").Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post, "comments": comments})
}

func (h *Handler) CreatePost(c *gin.Context) {
	var input struct {
		Title string `json:"title" binding:"required"`
		Body  string `json:"body" binding:"required"`
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

	// The moderation check runs before any notification side effects fire
	filter, err := moderation.LoadFilter(utils.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load moderation filter"})
		return
	}
	if matched := filter.Check(input.Title + " " + input.Body); len(matched) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         "Post contains banned words",
			"matched_terms": matched,
		})
		return
	}

	post := models.ForumPost{
		UserID: user.ID,
		Title:  input.Title,
		Body:   input.Body,
	}

	if err := utils.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	// Alert admins about the new post; the post itself is already saved,
	// so a notification failure is logged and not surfaced.
	targetAll := false
	if _, err := h.Notify.CreateNotification(notify.CreateInput{
		Title:           "New forum post",
		Body:            fmt.Sprintf("%s posted %q on the forum", user.Name, post.Title),
		TargetAll:       &targetAll,
		TargetAdminOnly: true,
		CreatedByID:     &user.ID,
	}); err != nil {
		log.Printf("Failed to create forum post notification: %v", err)
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

func (h *Handler) CreateComment(c *gin.Context) {
	var input struct {
		Body string `json:"body" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data. A body is required."})
		return
	}

	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var post models.ForumPost
	if err := utils.DB.First(&post, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	filter, err := moderation.LoadFilter(utils.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load moderation filter"})
		return
	}
	if matched := filter.Check(input.Body); len(matched) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         "Comment contains banned words",
			"matched_terms": matched,
		})
		return
	}

	comment := models.ForumComment{
		PostID: post.ID,
		UserID: user.ID,
		Body:   strings.TrimSpace(input.Body),
	}

	if err := utils.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}
