package notify

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"competition-portal-server/models"
)

// fetchLimit caps how many matching notifications a single fetch returns
// and materializes receipts for.
const fetchLimit = 50

// scanBatchSize is how many notifications the visibility scan pulls per
// query while looking for matches.
const scanBatchSize = 200

// ErrNotificationNotFound is returned when an operation references a
// notification id that does not exist.
var ErrNotificationNotFound = errors.New("notification not found")

// InboxItem is one receipt joined with its notification's content.
type InboxItem struct {
	NotificationID        uint       `json:"notification_id"`
	Title                 string     `json:"title"`
	Body                  string     `json:"body"`
	NotificationCreatedAt time.Time  `json:"notification_created_at"`
	IsRead                bool       `json:"is_read"`
	ReadAt                *time.Time `json:"read_at,omitempty"`
	ReceiptCreatedAt      time.Time  `json:"receipt_created_at"`
}

// Store is the persistence surface the notification service runs on.
// Receipt writes must be atomic insert-if-absent / upsert operations backed
// by the unique (notification_id, user_id) index, never read-then-write.
type Store interface {
	InsertNotification(n *models.Notification) error
	FindNotification(id uint) (*models.Notification, error)
	FindVisibleNotifications(a Audience) ([]models.Notification, error)
	UpsertReceiptsIfAbsent(receipts []models.NotificationReceipt) error
	UpsertReceiptRead(userID, notificationID uint, at time.Time) error
	ListReceipts(userID uint, notificationIDs []uint) ([]InboxItem, error)
	CountUnread(userID uint, notificationIDs []uint) (int64, error)
	DeleteNotification(id uint) error
}

// GormStore implements Store on a gorm connection.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) InsertNotification(n *models.Notification) error {
	return s.db.Create(n).Error
}

func (s *GormStore) FindNotification(id uint) (*models.Notification, error) {
	var n models.Notification
	if err := s.db.First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &n, nil
}

// FindVisibleNotifications returns the newest notifications addressed to
// the audience, capped at fetchLimit. Target lists are stored serialized,
// so membership cannot go into the WHERE clause; the scan walks
// newest-first and applies the visibility rule here.
func (s *GormStore) FindVisibleNotifications(a Audience) ([]models.Notification, error) {
	visible := make([]models.Notification, 0, fetchLimit)
	for offset := 0; ; offset += scanBatchSize {
		var batch []models.Notification
		if err := s.db.Order("created_at DESC, id DESC").
			Limit(scanBatchSize).Offset(offset).
			Find(&batch).Error; err != nil {
			return nil, err
		}
		for i := range batch {
			if visibleTo(&batch[i], a) {
				visible = append(visible, batch[i])
				if len(visible) == fetchLimit {
					return visible, nil
				}
			}
		}
		if len(batch) < scanBatchSize {
			return visible, nil
		}
	}
}

// UpsertReceiptsIfAbsent inserts the given receipts, skipping any whose
// (notification_id, user_id) pair already exists. Existing read state is
// never touched.
func (s *GormStore) UpsertReceiptsIfAbsent(receipts []models.NotificationReceipt) error {
	if len(receipts) == 0 {
		return nil
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "notification_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(&receipts).Error
}

// UpsertReceiptRead marks the receipt read, creating it if the lazy
// materialization pass has not run for this pair yet.
func (s *GormStore) UpsertReceiptRead(userID, notificationID uint, at time.Time) error {
	receipt := models.NotificationReceipt{
		NotificationID: notificationID,
		UserID:         userID,
		IsRead:         true,
		ReadAt:         &at,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "notification_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"is_read": true,
			"read_at": at,
		}),
	}).Create(&receipt).Error
}

func (s *GormStore) ListReceipts(userID uint, notificationIDs []uint) ([]InboxItem, error) {
	items := []InboxItem{}
	if len(notificationIDs) == 0 {
		return items, nil
	}
	err := s.db.Model(&models.NotificationReceipt{}).
		Select("notification_receipts.notification_id, notifications.title, notifications.body, notifications.created_at AS notification_created_at, notification_receipts.is_read, notification_receipts.read_at, notification_receipts.created_at AS receipt_created_at").
		Joins("JOIN notifications ON notifications.id = notification_receipts.notification_id").
		Where("notification_receipts.user_id = ? AND notification_receipts.notification_id IN ?", userID, notificationIDs).
		Order("notification_receipts.created_at DESC, notifications.created_at DESC, notifications.id DESC").
		Scan(&items).Error
	return items, err
}

func (s *GormStore) CountUnread(userID uint, notificationIDs []uint) (int64, error) {
	if len(notificationIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := s.db.Model(&models.NotificationReceipt{}).
		Where("user_id = ? AND notification_id IN ? AND is_read = ?", userID, notificationIDs, false).
		Count(&count).Error
	return count, err
}

// DeleteNotification removes a notification and its receipts in one
// transaction so receipts never outlive their notification.
func (s *GormStore) DeleteNotification(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("notification_id = ?", id).
			Delete(&models.NotificationReceipt{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Notification{}, id).Error
	})
}
