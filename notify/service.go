package notify

import (
	"time"

	"competition-portal-server/models"
)

// Service implements notification authoring, inbox fetches, and read-state
// updates over an injected Store.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// CreateInput carries the content and addressing specification for a new
// notification. TargetAll defaults to true when nil.
type CreateInput struct {
	Title              string
	Body               string
	TargetAll          *bool
	TargetAdminOnly    bool
	TargetInstitutions []string
	TargetUserIDs      []uint
	CreatedByID        *uint
}

// CreateNotification persists the notification and eagerly materializes
// receipts for explicitly listed users, so they see it before any lazy
// materialization pass runs. The two writes are not one transaction; a
// crash in between is repaired by the next fetch.
func (s *Service) CreateNotification(in CreateInput) (*models.Notification, error) {
	targetAll := true
	if in.TargetAll != nil {
		targetAll = *in.TargetAll
	}

	n := &models.Notification{
		Title:              in.Title,
		Body:               in.Body,
		TargetAll:          targetAll,
		TargetAdminOnly:    in.TargetAdminOnly,
		TargetInstitutions: in.TargetInstitutions,
		TargetUserIDs:      in.TargetUserIDs,
		CreatedByID:        in.CreatedByID,
	}
	if err := s.store.InsertNotification(n); err != nil {
		return nil, err
	}

	if len(in.TargetUserIDs) > 0 {
		receipts := make([]models.NotificationReceipt, 0, len(in.TargetUserIDs))
		for _, userID := range in.TargetUserIDs {
			receipts = append(receipts, models.NotificationReceipt{
				NotificationID: n.ID,
				UserID:         userID,
			})
		}
		if err := s.store.UpsertReceiptsIfAbsent(receipts); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// FetchForUser ensures a receipt exists for every notification visible to
// the audience, then returns the receipts joined with notification content,
// newest-first.
func (s *Service) FetchForUser(a Audience) ([]InboxItem, error) {
	ids, err := s.materialize(a)
	if err != nil {
		return nil, err
	}
	return s.store.ListReceipts(a.UserID, ids)
}

// UnreadCount runs the same materialization pass as FetchForUser and counts
// the receipts still unread.
func (s *Service) UnreadCount(a Audience) (int64, error) {
	ids, err := s.materialize(a)
	if err != nil {
		return 0, err
	}
	return s.store.CountUnread(a.UserID, ids)
}

// MarkRead marks the receipt for (user, notification) read. Creating the
// receipt on the spot covers acknowledgments that race ahead of
// materialization. Calling it again is a no-op apart from the timestamp;
// read state never reverts.
func (s *Service) MarkRead(userID, notificationID uint) error {
	if _, err := s.store.FindNotification(notificationID); err != nil {
		return err
	}
	return s.store.UpsertReceiptRead(userID, notificationID, time.Now())
}

// DeleteNotification removes a notification together with its receipts.
func (s *Service) DeleteNotification(id uint) error {
	if _, err := s.store.FindNotification(id); err != nil {
		return err
	}
	return s.store.DeleteNotification(id)
}

func (s *Service) materialize(a Audience) ([]uint, error) {
	visible, err := s.store.FindVisibleNotifications(a)
	if err != nil {
		return nil, err
	}
	if len(visible) == 0 {
		return nil, nil
	}

	ids := make([]uint, 0, len(visible))
	receipts := make([]models.NotificationReceipt, 0, len(visible))
	for i := range visible {
		ids = append(ids, visible[i].ID)
		receipts = append(receipts, models.NotificationReceipt{
			NotificationID: visible[i].ID,
			UserID:         a.UserID,
		})
	}
	if err := s.store.UpsertReceiptsIfAbsent(receipts); err != nil {
		return nil, err
	}
	return ids, nil
}
