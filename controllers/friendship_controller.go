// File: /controllers/friendship_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"treebook-api/models"
	"treebook-api/services"
	"treebook-api/utils"
)

type FriendshipController struct {
	db                *gorm.DB
	friendshipService *services.FriendshipService
	userService       *services.UserService
}

func NewFriendshipController(db *gorm.DB, friendshipService *services.FriendshipService, userService *services.UserService) *FriendshipController {
	return &FriendshipController{
		db:                db,
		friendshipService: friendshipService,
		userService:       userService,
	}
}

// GetFriendships lists every friendship row owned by the current user,
// pending and accepted, newest first.
func (fc *FriendshipController) GetFriendships(c *gin.Context) {
	userID := c.GetString("user_id")

	friendships, err := fc.friendshipService.AllFor(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch friendships")
		return
	}

	for i := range friendships {
		friendships[i].Friend.Password = ""
	}

	c.JSON(http.StatusOK, gin.H{"friendships": friendships})
}

type CreateFriendshipRequest struct {
	FriendID          string `json:"friend_id"`
	FriendProfileName string `json:"friend_profile_name"`
}

// CreateFriendship sends a friend request, addressed by user id or by
// profile name.
func (fc *FriendshipController) CreateFriendship(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateFriendshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	friendID := req.FriendID
	if friendID == "" && req.FriendProfileName != "" {
		friend, err := fc.userService.FindByProfileName(req.FriendProfileName)
		if err != nil {
			utils.SendError(c, http.StatusNotFound, "User not found")
			return
		}
		friendID = friend.ID
	}
	if friendID == "" {
		utils.SendError(c, http.StatusBadRequest, "Friend required")
		return
	}

	friendship, err := fc.friendshipService.Request(userID, friendID)
	if err != nil {
		fc.sendFriendshipError(c, err)
		return
	}

	utils.SendCreated(c, "Friend request sent", friendship)
}

// AcceptFriendship accepts a pending request. The id must be the current
// user's own row of the pair.
func (fc *FriendshipController) AcceptFriendship(c *gin.Context) {
	userID := c.GetString("user_id")

	friendshipID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid friendship ID")
		return
	}

	friendship, err := fc.friendshipService.Accept(userID, uint(friendshipID))
	if err != nil {
		fc.sendFriendshipError(c, err)
		return
	}

	var friend models.User
	if err := fc.db.First(&friend, "id = ?", friendship.FriendID).Error; err == nil {
		utils.SendSuccess(c, "You are now friends with "+friend.FirstName, friendship)
		return
	}
	utils.SendSuccess(c, "Friend request accepted", friendship)
}

// DestroyFriendship removes both rows of the pair, in any state.
func (fc *FriendshipController) DestroyFriendship(c *gin.Context) {
	userID := c.GetString("user_id")

	friendshipID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid friendship ID")
		return
	}

	if err := fc.friendshipService.Destroy(userID, uint(friendshipID)); err != nil {
		fc.sendFriendshipError(c, err)
		return
	}

	utils.SendSuccess(c, "Friendship destroyed", nil)
}

// GetFriends lists the users this user has an accepted friendship with.
func (fc *FriendshipController) GetFriends(c *gin.Context) {
	userID := c.GetString("user_id")

	friends, err := fc.friendshipService.FriendsOf(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch friends")
		return
	}

	for i := range friends {
		friends[i].Password = ""
	}

	c.JSON(http.StatusOK, gin.H{"friends": friends})
}

// GetPendingRequests lists requests awaiting this user's decision.
func (fc *FriendshipController) GetPendingRequests(c *gin.Context) {
	userID := c.GetString("user_id")

	requests, err := fc.friendshipService.PendingIncoming(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch friend requests")
		return
	}

	for i := range requests {
		requests[i].Friend.Password = ""
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// GetSentRequests lists pending requests this user initiated.
func (fc *FriendshipController) GetSentRequests(c *gin.Context) {
	userID := c.GetString("user_id")

	requests, err := fc.friendshipService.PendingOutgoing(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch sent requests")
		return
	}

	for i := range requests {
		requests[i].Friend.Password = ""
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// GetFriendshipStatus reports the relationship between the current user
// and another user: none, pending (and which side), or accepted.
func (fc *FriendshipController) GetFriendshipStatus(c *gin.Context) {
	userID := c.GetString("user_id")
	targetUserID := c.Param("user_id")

	if userID == targetUserID {
		c.JSON(http.StatusOK, gin.H{"state": "none"})
		return
	}

	pair, err := fc.friendshipService.FindPairFor(userID, targetUserID)
	if err != nil {
		if errors.Is(err, services.ErrFriendshipNotFound) {
			c.JSON(http.StatusOK, gin.H{"state": "none"})
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch friendship status")
		return
	}

	mine := pair[0]
	c.JSON(http.StatusOK, gin.H{
		"state":         mine.State,
		"initiated":     mine.Initiator,
		"friendship_id": mine.ID,
	})
}

// sendFriendshipError maps engine errors onto HTTP statuses. The error
// kind alone carries enough information; no state is re-derived here.
func (fc *FriendshipController) sendFriendshipError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSelfFriend):
		utils.SendError(c, http.StatusBadRequest, "Cannot send friend request to yourself")
	case errors.Is(err, services.ErrUserNotFound):
		utils.SendError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrFriendshipNotFound):
		utils.SendError(c, http.StatusNotFound, "Friendship not found")
	case errors.Is(err, services.ErrAlreadyRequested):
		utils.SendError(c, http.StatusConflict, "Friend request already exists")
	case errors.Is(err, services.ErrInvalidState):
		utils.SendError(c, http.StatusConflict, "Friendship is not pending")
	case errors.Is(err, services.ErrNotAuthorized):
		utils.SendError(c, http.StatusForbidden, "Not authorized to modify this friendship")
	default:
		utils.SendError(c, http.StatusInternalServerError, "Friendship operation failed")
	}
}
