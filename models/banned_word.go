package models

import "time"

type BannedWord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Word      string    `gorm:"unique;not null" json:"word"`
	CreatedAt time.Time `json:"created_at"`
}
