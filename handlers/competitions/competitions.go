package competitions

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"competition-portal-server/handlers/auth"
	"competition-portal-server/models"
	"competition-portal-server/utils"
)

// GetCompetitions lists the competitions visible to the public, newest first.
func GetCompetitions(c *gin.Context) {
	var competitions []models.Competition
	if err := utils.DB.Where("visible = ?", true).Order("created_at DESC").Find(&competitions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch competitions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"competitions": competitions})
}

func GetCompetition(c *gin.Context) {
	var competition models.Competition
	if err := utils.DB.First(&competition, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Competition not found"})
		return
	}

	if !competition.Visible {
		user, ok := auth.CurrentUser(c)
		if !ok || !user.IsAdmin {
			c.JSON(http.StatusNotFound, gin.H{"error": "Competition not found"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"competition": competition})
}

func CreateCompetition(c *gin.Context) {
	var input struct {
		Title       string    `json:"title" binding:"required"`
		Description string    `json:"description"`
		BannerURL   string    `json:"banner_url"`
		StartsAt    time.Time `json:"starts_at"`
		EndsAt      time.Time `json:"ends_at"`
		Visible     *bool     `json:"visible"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data. A title is required."})
		return
	}

	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	visible := true
	if input.Visible != nil {
		visible = *input.Visible
	}

	competition := models.Competition{
		Title:       input.Title,
		Description: input.Description,
		BannerURL:   input.BannerURL,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		Visible:     visible,
		CreatedByID: &user.ID,
	}

	if err := utils.DB.Create(&competition).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create competition"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"competition": competition})
}

func UpdateCompetition(c *gin.Context) {
	var competition models.Competition
	if err := utils.DB.First(&competition, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Competition not found"})
		return
	}

	var input struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		BannerURL   *string    `json:"banner_url"`
		StartsAt    *time.Time `json:"starts_at"`
		EndsAt      *time.Time `json:"ends_at"`
		Visible     *bool      `json:"visible"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		return
	}

	if input.Title != nil {
		competition.Title = *input.Title
	}
	if input.Description != nil {
		competition.Description = *input.Description
	}
	if input.BannerURL != nil {
		competition.BannerURL = *input.BannerURL
	}
	if input.StartsAt != nil {
		competition.StartsAt = *input.StartsAt
	}
	if input.EndsAt != nil {
		competition.EndsAt = *input.EndsAt
	}
	if input.Visible != nil {
		competition.Visible = *input.Visible
	}

	if err := utils.DB.Save(&competition).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update competition"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"competition": competition})
}

func DeleteCompetition(c *gin.Context) {
	var competition models.Competition
	if err := utils.DB.First(&competition, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Competition not found"})
		return
	}

	if err := utils.DB.Delete(&competition).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete competition"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Competition deleted"})
}
