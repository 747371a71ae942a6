package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"competition-portal-server/models"
)

func strptr(s string) *string { return &s }

func TestVisibleTo(t *testing.T) {
	tests := []struct {
		name         string
		notification models.Notification
		audience     Audience
		want         bool
	}{
		{
			name:         "broadcast visible to regular user",
			notification: models.Notification{TargetAll: true},
			audience:     Audience{UserID: 1},
			want:         true,
		},
		{
			name:         "broadcast visible to admin",
			notification: models.Notification{TargetAll: true},
			audience:     Audience{UserID: 1, IsAdmin: true},
			want:         true,
		},
		{
			name:         "broadcast visible to user without institution",
			notification: models.Notification{TargetAll: true},
			audience:     Audience{UserID: 1, Institution: nil},
			want:         true,
		},
		{
			name:         "admin only visible to admin",
			notification: models.Notification{TargetAdminOnly: true},
			audience:     Audience{UserID: 1, IsAdmin: true},
			want:         true,
		},
		{
			name:         "admin only hidden from regular user",
			notification: models.Notification{TargetAdminOnly: true},
			audience:     Audience{UserID: 1},
			want:         false,
		},
		{
			name:         "admin broadcast also visible to regular user",
			notification: models.Notification{TargetAll: true, TargetAdminOnly: false},
			audience:     Audience{UserID: 1},
			want:         true,
		},
		{
			// The admin-flag clause compares equality, so a non-broadcast
			// notification without the admin flag still matches every
			// regular user.
			name:         "non-broadcast without admin flag matches regular user",
			notification: models.Notification{TargetAll: false, TargetAdminOnly: false},
			audience:     Audience{UserID: 1},
			want:         true,
		},
		{
			name:         "non-broadcast without admin flag hidden from admin",
			notification: models.Notification{TargetAll: false, TargetAdminOnly: false},
			audience:     Audience{UserID: 1, IsAdmin: true},
			want:         false,
		},
		{
			name: "explicit user id overrides admin restriction",
			notification: models.Notification{
				TargetAll:       false,
				TargetAdminOnly: true,
				TargetUserIDs:   []uint{7},
			},
			audience: Audience{UserID: 7},
			want:     true,
		},
		{
			name: "explicit user id list does not leak to other users",
			notification: models.Notification{
				TargetAll:       false,
				TargetAdminOnly: true,
				TargetUserIDs:   []uint{7},
			},
			audience: Audience{UserID: 8},
			want:     false,
		},
		{
			name: "institution match",
			notification: models.Notification{
				TargetAll:          false,
				TargetAdminOnly:    true,
				TargetInstitutions: []string{"MIT", "ETH"},
			},
			audience: Audience{UserID: 1, Institution: strptr("ETH")},
			want:     true,
		},
		{
			name: "institution mismatch",
			notification: models.Notification{
				TargetAll:          false,
				TargetAdminOnly:    true,
				TargetInstitutions: []string{"MIT"},
			},
			audience: Audience{UserID: 1, Institution: strptr("ETH")},
			want:     false,
		},
		{
			name: "user without institution never matches institution list",
			notification: models.Notification{
				TargetAll:          false,
				TargetAdminOnly:    true,
				TargetInstitutions: []string{"MIT"},
			},
			audience: Audience{UserID: 1},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, visibleTo(&tt.notification, tt.audience))
		})
	}
}
