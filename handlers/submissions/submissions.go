package submissions

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"competition-portal-server/handlers/auth"
	"competition-portal-server/models"
	"competition-portal-server/utils"
)

func SubmitEntry(c *gin.Context) {
	var input struct {
		CompetitionID uint   `json:"competition_id" binding:"required"`
		Title         string `json:"title" binding:"required"`
		Abstract      string `json:"abstract"`
		FileURL       string `json:"file_url"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data. A competition and title are required."})
		return
	}

	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var competition models.Competition
	if err := utils.DB.First(&competition, input.CompetitionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Competition not found"})
		return
	}

	if !competition.EndsAt.IsZero() && time.Now().After(competition.EndsAt) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This competition is closed for submissions"})
		return
	}

	submission := models.Submission{
		CompetitionID: input.CompetitionID,
		UserID:        user.ID,
		Title:         input.Title,
		Abstract:      input.Abstract,
		FileURL:       input.FileURL,
	}

	if err := utils.DB.Create(&submission).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit entry"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"submission": submission})
}

func GetUserSubmissions(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var submissions []models.Submission
	if err := utils.DB.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": submissions})
}

// GetCompetitionSubmissions lists every submission for one competition.
// Admin only.
func GetCompetitionSubmissions(c *gin.Context) {
	var submissions []models.Submission
	if err := utils.DB.Where("competition_id = ?", c.Param("id")).Order("created_at DESC").Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": submissions})
}
