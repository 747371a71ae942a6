package notify

import (
	"competition-portal-server/models"
)

// Audience identifies the authenticated user a fetch runs for. Handlers
// build it from the user the auth middleware loaded; the engine never sees
// an unauthenticated caller.
type Audience struct {
	UserID      uint
	Institution *string
	IsAdmin     bool
}

// visibleTo reports whether n is addressed to the audience. Any one clause
// is enough:
//   - broadcast: target_all set and not admin-only
//   - the admin flag on the notification equals the audience's admin flag
//   - the user id is explicitly listed
//   - the user's institution is listed (users without one never match)
func visibleTo(n *models.Notification, a Audience) bool {
	if n.TargetAll && !n.TargetAdminOnly {
		return true
	}
	if n.TargetAdminOnly == a.IsAdmin {
		return true
	}
	for _, id := range n.TargetUserIDs {
		if id == a.UserID {
			return true
		}
	}
	if a.Institution != nil {
		for _, inst := range n.TargetInstitutions {
			if inst == *a.Institution {
				return true
			}
		}
	}
	return false
}
