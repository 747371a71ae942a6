package forum

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"competition-portal-server/handlers/auth"
	"competition-portal-server/models"
	"competition-portal-server/utils"
)

var reactionKinds = map[string]bool{
	"like":      true,
	"celebrate": true,
	"insight":   true,
	"question":  true,
}

// ReactToPost records the user's reaction to a post. A repeat reaction from
// the same user switches the kind instead of adding a second row.
func (h *Handler) ReactToPost(c *gin.Context) {
	var input struct {
		Kind string `json:"kind" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data. A reaction kind is required."})
		return
	}

	if !reactionKinds[input.Kind] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown reaction kind"})
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

	reaction := models.Reaction{
		PostID: post.ID,
		UserID: user.ID,
		Kind:   input.Kind,
	}

	if err := utils.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"kind", "updated_at"}),
	}).Create(&reaction).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reaction": reaction})
}

// GetReactionCounts returns per-kind reaction totals for a post.
func (h *Handler) GetReactionCounts(c *gin.Context) {
	var post models.ForumPost
	if err := utils.DB.First(&post, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	type kindCount struct {
		Kind  string `json:"kind"`
		Count int64  `json:"count"`
	}
	var counts []kindCount
	if err := utils.DB.Model(&models.Reaction{}).
		Select("kind, COUNT(*) AS count").
		Where("post_id = ?", post.ID).
		Group("kind").
		Scan(&counts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reaction counts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reactions": counts})
}
