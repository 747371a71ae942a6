package forum

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"competition-portal-server/models"
	"competition-portal-server/utils"
)

// GetBannedWords lists the moderation denylist. Admin only.
func (h *Handler) GetBannedWords(c *gin.Context) {
	var words []models.BannedWord
	if err := utils.DB.Order("word ASC").Find(&words).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch banned words"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"banned_words": words})
}

// AddBannedWord adds a term to the moderation denylist. Admin only.
func (h *Handler) AddBannedWord(c *gin.Context) {
	var input struct {
		Word string `json:"word" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data. A word is required."})
		return
	}

	word := models.BannedWord{Word: strings.ToLower(strings.TrimSpace(input.Word))}
	if word.Word == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data. A word is required."})
		return
	}

	if err := utils.DB.Create(&word).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Word is already banned"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"banned_word": word})
}
