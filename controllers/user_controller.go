// File: /controllers/user_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"treebook-api/models"
	"treebook-api/services"
	"treebook-api/utils"
)

type UserController struct {
	db          *gorm.DB
	userService *services.UserService
}

func NewUserController(db *gorm.DB, userService *services.UserService) *UserController {
	return &UserController{db: db, userService: userService}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := uc.userService.FindByID(userID)
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, user)
}

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// UpdateProfile changes display names only. The profile name is immutable
// once set; there is no rename flow.
func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		if *req.FirstName == "" {
			errs := models.ValidationErrors{}
			errs.Add("first_name", "can't be blank")
			utils.SendValidationErrors(c, errs)
			return
		}
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		if *req.LastName == "" {
			errs := models.ValidationErrors{}
			errs.Add("last_name", "can't be blank")
			utils.SendValidationErrors(c, errs)
			return
		}
		updates["last_name"] = *req.LastName
	}

	if len(updates) > 0 {
		if err := uc.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to update profile")
			return
		}
	}

	utils.SendSuccess(c, "Profile updated successfully", nil)
}

// GetUserByProfileName serves the public profile page data: the user and
// their recent statuses.
func (uc *UserController) GetUserByProfileName(c *gin.Context) {
	profileName := c.Param("profile_name")

	user, err := uc.userService.FindByProfileName(profileName)
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	var statuses []models.Status
	if err := uc.db.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&statuses).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch statuses")
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"user":      user,
		"full_name": user.FullName(),
		"statuses":  statuses,
	})
}
