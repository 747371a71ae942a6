package models

import (
	"time"
)

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"not null" json:"name"`
	Email        string     `gorm:"unique;not null" json:"email"`
	Password     string     `gorm:"not null" json:"-"`
	Institution  *string    `json:"institution,omitempty"`
	IsAdmin      bool       `gorm:"default:false" json:"is_admin"`
	PushToken    string     `gorm:"column:push_token" json:"-"`
	RefreshToken string     `gorm:"column:refresh_token" json:"-"`
	LastLogoutAt *time.Time `gorm:"column:last_logout_at" json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
