// File: /services/authorization.go
package services

import "treebook-api/models"

// FriendshipAction is something an acting user can do to a friendship row.
type FriendshipAction string

const (
	ActionAccept  FriendshipAction = "accept"
	ActionDestroy FriendshipAction = "destroy"
)

// Authorize decides whether actor may perform action on the given
// friendship row. Pure predicate, no storage access: ownership for every
// action, and accept additionally requires the row to be the recipient
// side, because only the party who did not initiate the request may accept
// it.
func Authorize(actorID string, friendship *models.UserFriendship, action FriendshipAction) bool {
	if friendship == nil || friendship.UserID != actorID {
		return false
	}

	switch action {
	case ActionAccept:
		return !friendship.Initiator
	case ActionDestroy:
		return true
	default:
		return false
	}
}
