package models

import "time"

// NotificationReceipt is the per-user delivery record for one notification.
// The unique (notification_id, user_id) index is what makes receipt creation
// idempotent under concurrent fetches.
type NotificationReceipt struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	NotificationID uint       `gorm:"not null;uniqueIndex:idx_receipt_notification_user" json:"notification_id"`
	UserID         uint       `gorm:"not null;uniqueIndex:idx_receipt_notification_user" json:"user_id"`
	IsRead         bool       `gorm:"default:false" json:"is_read"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
