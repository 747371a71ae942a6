package models

import "time"

type Submission struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CompetitionID uint      `gorm:"not null;index" json:"competition_id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	Title         string    `gorm:"not null" json:"title"`
	Abstract      string    `gorm:"type:text" json:"abstract"`
	FileURL       string    `json:"file_url"`
	Status        string    `gorm:"default:'submitted'" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
