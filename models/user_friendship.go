// File: /models/user_friendship.go
package models

import "time"

type FriendshipState string

const (
	FriendshipStatePending  FriendshipState = "pending"
	FriendshipStateAccepted FriendshipState = "accepted"
)

// UserFriendship is one directed half of a mutual friendship. Every
// relationship between two users is stored as two rows, (user, friend) and
// (friend, user), created, transitioned and deleted together in one
// transaction. The composite unique index rejects a second row for the same
// ordered pair, which is what stops two concurrent requests for the same
// pair from both succeeding.
type UserFriendship struct {
	ID       uint            `json:"id" gorm:"primaryKey"`
	UserID   string          `json:"user_id" gorm:"not null;size:191;uniqueIndex:idx_user_friend"`
	FriendID string          `json:"friend_id" gorm:"not null;size:191;uniqueIndex:idx_user_friend"`
	State    FriendshipState `json:"state" gorm:"not null;default:'pending';size:20"`
	// Initiator is true on the requester's row and false on the
	// recipient's. Only the recipient side may accept.
	Initiator bool      `json:"initiator" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User   User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Friend User `json:"friend,omitempty" gorm:"foreignKey:FriendID"`
}

func (UserFriendship) TableName() string {
	return "user_friendships"
}

// Pending reports whether the row is still awaiting a decision.
func (uf *UserFriendship) Pending() bool {
	return uf.State == FriendshipStatePending
}

// Accepted reports whether the relationship has been confirmed.
func (uf *UserFriendship) Accepted() bool {
	return uf.State == FriendshipStateAccepted
}
