// File: /controllers/status_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"

	"treebook-api/models"
	"treebook-api/utils"
)

type StatusController struct {
	db        *gorm.DB
	sanitizer *bluemonday.Policy
}

func NewStatusController(db *gorm.DB) *StatusController {
	return &StatusController{
		db: db,
		// Strict policy: status content is plain text, any markup is
		// stripped before validation and storage.
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (sc *StatusController) GetStatuses(c *gin.Context) {
	var statuses []models.Status
	if err := sc.db.Preload("User").Order("created_at DESC").Find(&statuses).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch statuses")
		return
	}

	for i := range statuses {
		statuses[i].User.Password = ""
	}

	c.JSON(http.StatusOK, gin.H{"statuses": statuses})
}

type CreateStatusRequest struct {
	Content string `json:"content"`
}

func (sc *StatusController) CreateStatus(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := models.Status{
		UserID:  userID,
		Content: sc.sanitizer.Sanitize(req.Content),
	}

	if errs := status.Validate(); errs.Any() {
		utils.SendValidationErrors(c, errs)
		return
	}

	if err := sc.db.Create(&status).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create status")
		return
	}

	utils.SendCreated(c, "Status posted", status)
}

type UpdateStatusRequest struct {
	Content string `json:"content"`
}

func (sc *StatusController) UpdateStatus(c *gin.Context) {
	userID := c.GetString("user_id")

	statusID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid status ID")
		return
	}

	var status models.Status
	if err := sc.db.First(&status, "id = ?", uint(statusID)).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Status not found")
		return
	}

	if status.UserID != userID {
		utils.SendError(c, http.StatusForbidden, "Not authorized to edit this status")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status.Content = sc.sanitizer.Sanitize(req.Content)
	if errs := status.Validate(); errs.Any() {
		utils.SendValidationErrors(c, errs)
		return
	}

	if err := sc.db.Save(&status).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update status")
		return
	}

	utils.SendSuccess(c, "Status updated", status)
}

func (sc *StatusController) DeleteStatus(c *gin.Context) {
	userID := c.GetString("user_id")

	statusID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid status ID")
		return
	}

	var status models.Status
	if err := sc.db.First(&status, "id = ?", uint(statusID)).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Status not found")
		return
	}

	if status.UserID != userID {
		utils.SendError(c, http.StatusForbidden, "Not authorized to delete this status")
		return
	}

	if err := sc.db.Delete(&status).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete status")
		return
	}

	utils.SendSuccess(c, "Status deleted", nil)
}
