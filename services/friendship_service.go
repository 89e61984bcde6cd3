// File: /services/friendship_service.go
package services

import (
	"errors"

	"gorm.io/gorm"

	"treebook-api/models"
)

// FriendshipService owns every write to user_friendships. One logical
// friendship is two reciprocal rows; each mutation touches both rows inside
// a single transaction so no reader ever observes half a pair.
type FriendshipService struct {
	db *gorm.DB
}

func NewFriendshipService(db *gorm.DB) *FriendshipService {
	return &FriendshipService{db: db}
}

// Request creates the pending pair for requester -> target. The requester's
// row carries the initiator marker; the target's row is the one that can
// later be accepted. Returns the requester's row.
func (fs *FriendshipService) Request(requesterID, targetID string) (*models.UserFriendship, error) {
	if requesterID == targetID {
		return nil, ErrSelfFriend
	}

	var target models.User
	if err := fs.db.First(&target, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// A relationship in any state, in either direction, blocks a new
	// request. Rejected here rather than treated as idempotent success.
	var existing models.UserFriendship
	err := fs.db.Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
		requesterID, targetID, targetID, requesterID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyRequested
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	mine := models.UserFriendship{
		UserID:    requesterID,
		FriendID:  targetID,
		State:     models.FriendshipStatePending,
		Initiator: true,
	}
	theirs := models.UserFriendship{
		UserID:    targetID,
		FriendID:  requesterID,
		State:     models.FriendshipStatePending,
		Initiator: false,
	}

	err = fs.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&mine).Error; err != nil {
			return err
		}
		return tx.Create(&theirs).Error
	})
	if err != nil {
		// A concurrent request for the same pair loses the race on the
		// (user_id, friend_id) unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyRequested
		}
		return nil, err
	}

	return &mine, nil
}

// Accept transitions the pair to accepted. friendshipID must identify the
// acting user's own row, and only the recipient side of the original
// request may accept.
func (fs *FriendshipService) Accept(actingUserID string, friendshipID uint) (*models.UserFriendship, error) {
	friendship, err := fs.findRow(friendshipID)
	if err != nil {
		return nil, err
	}

	if !Authorize(actingUserID, friendship, ActionAccept) {
		return nil, ErrNotAuthorized
	}
	if !friendship.Pending() {
		return nil, ErrInvalidState
	}

	err = fs.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(friendship).Update("state", models.FriendshipStateAccepted).Error; err != nil {
			return err
		}

		// Reciprocal row is located by swapping the pair key.
		res := tx.Model(&models.UserFriendship{}).
			Where("user_id = ? AND friend_id = ?", friendship.FriendID, friendship.UserID).
			Update("state", models.FriendshipStateAccepted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return ErrFriendshipNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return friendship, nil
}

// Destroy removes both rows of the pair in any state. Either party may
// destroy, identified by their own row.
func (fs *FriendshipService) Destroy(actingUserID string, friendshipID uint) error {
	friendship, err := fs.findRow(friendshipID)
	if err != nil {
		return err
	}

	if !Authorize(actingUserID, friendship, ActionDestroy) {
		return ErrNotAuthorized
	}

	return fs.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.UserFriendship{}, friendship.ID).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ? AND friend_id = ?", friendship.FriendID, friendship.UserID).
			Delete(&models.UserFriendship{}).Error
	})
}

// FindPairFor returns both rows of the relationship between two users,
// the row owned by userA first.
func (fs *FriendshipService) FindPairFor(userAID, userBID string) ([]models.UserFriendship, error) {
	var rows []models.UserFriendship
	err := fs.db.Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
		userAID, userBID, userBID, userAID).
		Order("user_id").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) != 2 {
		return nil, ErrFriendshipNotFound
	}
	if rows[0].UserID != userAID {
		rows[0], rows[1] = rows[1], rows[0]
	}
	return rows, nil
}

// FriendsOf returns the users on the other end of the accepted rows owned
// by userID. Empty slice, not an error, when the user has no friends.
func (fs *FriendshipService) FriendsOf(userID string) ([]models.User, error) {
	var friends []models.User
	err := fs.db.
		Joins("JOIN user_friendships ON user_friendships.friend_id = users.id").
		Where("user_friendships.user_id = ? AND user_friendships.state = ?",
			userID, models.FriendshipStateAccepted).
		Find(&friends).Error
	if err != nil {
		return nil, err
	}
	return friends, nil
}

// PendingIncoming returns the pending rows awaiting this user's decision:
// rows they own where the other party initiated.
func (fs *FriendshipService) PendingIncoming(userID string) ([]models.UserFriendship, error) {
	var rows []models.UserFriendship
	err := fs.db.Preload("Friend").
		Where("user_id = ? AND state = ? AND initiator = ?",
			userID, models.FriendshipStatePending, false).
		Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// PendingOutgoing returns the pending requests this user initiated.
func (fs *FriendshipService) PendingOutgoing(userID string) ([]models.UserFriendship, error) {
	var rows []models.UserFriendship
	err := fs.db.Preload("Friend").
		Where("user_id = ? AND state = ? AND initiator = ?",
			userID, models.FriendshipStatePending, true).
		Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// AllFor returns every friendship row owned by the user, pending and
// accepted, with the friend preloaded for display.
func (fs *FriendshipService) AllFor(userID string) ([]models.UserFriendship, error) {
	var rows []models.UserFriendship
	err := fs.db.Preload("Friend").
		Where("user_id = ?", userID).
		Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (fs *FriendshipService) findRow(id uint) (*models.UserFriendship, error) {
	var friendship models.UserFriendship
	if err := fs.db.First(&friendship, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFriendshipNotFound
		}
		return nil, err
	}
	return &friendship, nil
}
