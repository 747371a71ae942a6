package migrations

import (
	"competition-portal-server/models"
	"competition-portal-server/utils"
)

func MigrateUsers() {
	utils.DB.AutoMigrate(&models.User{})
}

func MigrateCompetitions() {
	utils.DB.AutoMigrate(&models.Competition{}, &models.Submission{})
}

func MigrateForum() {
	utils.DB.AutoMigrate(&models.ForumPost{}, &models.ForumComment{}, &models.Reaction{}, &models.BannedWord{})
}

func MigrateNotifications() {
	utils.DB.AutoMigrate(&models.Notification{}, &models.NotificationReceipt{})
}
