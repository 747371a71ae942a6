package models

import "time"

// Notification is a titled message with an addressing specification.
// Target fields are set once at creation and never mutated; per-user
// read state lives on NotificationReceipt.
//
// TargetAll carries no column default on purpose: gorm omits zero-valued
// fields that have one, which would turn an explicit false back into true.
// Defaulting happens in notify.CreateInput instead.
type Notification struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Title              string    `gorm:"not null" json:"title"`
	Body               string    `gorm:"type:text;not null" json:"body"`
	TargetAll          bool      `json:"target_all"`
	TargetAdminOnly    bool      `gorm:"default:false" json:"target_admin_only"`
	TargetInstitutions []string  `gorm:"serializer:json" json:"target_institutions,omitempty"`
	TargetUserIDs      []uint    `gorm:"serializer:json" json:"target_user_ids,omitempty"`
	CreatedByID        *uint     `json:"created_by_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}
