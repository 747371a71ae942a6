// seed/seed.go
package seed

import (
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"competition-portal-server/models"
	"competition-portal-server/utils"
)

// defaultBannedWords is the starting moderation denylist; admins extend it
// at runtime.
var defaultBannedWords = []string{
	"spam",
	"scam",
	"phishing",
	"clickbait",
}

// SeedAdminUser creates the initial admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD if no admin exists yet.
func SeedAdminUser() error {
	var existing models.User
	err := utils.DB.Where("is_admin = ?", true).First(&existing).Error
	if err == nil {
		log.Println("Admin user already exists. Skipping seeding.")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL or ADMIN_PASSWORD not set. Skipping admin seeding.")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    email,
		Password: string(hashedPassword),
		IsAdmin:  true,
	}

	if err := utils.DB.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Admin user seeded successfully.")
	return nil
}

// SeedBannedWords inserts the default denylist, skipping words already
// present.
func SeedBannedWords() error {
	words := make([]models.BannedWord, 0, len(defaultBannedWords))
	for _, w := range defaultBannedWords {
		words = append(words, models.BannedWord{Word: w})
	}

	if err := utils.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "word"}},
		DoNothing: true,
	}).Create(&words).Error; err != nil {
		return err
	}

	log.Println("Banned words seeded successfully.")
	return nil
}
