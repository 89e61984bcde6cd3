// File: /controllers/auth_controller.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"treebook-api/models"
	"treebook-api/services"
	"treebook-api/utils"
)

type AuthController struct {
	db           *gorm.DB
	jwtSecret    string
	userService  *services.UserService
	emailService *services.EmailService
}

func NewAuthController(db *gorm.DB, jwtSecret string, userService *services.UserService, emailService *services.EmailService) *AuthController {
	return &AuthController{
		db:           db,
		jwtSecret:    jwtSecret,
		userService:  userService,
		emailService: emailService,
	}
}

type RegisterRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	ProfileName string `json:"profile_name"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		ProfileName: req.ProfileName,
		Email:       req.Email,
	}

	if err := ac.userService.Create(&user, req.Password); err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			utils.SendValidationErrors(c, verrs)
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	user.Password = ""
	utils.SendCreated(c, "Registration successful", user)
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.userService.Authenticate(req.Email, req.Password)
	if err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := ac.generateJWT(user.ID, user.Email)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, AuthResponse{
		Token: token,
		User:  *user,
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	// Stateless JWT: logout is handled client-side by dropping the token
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (ac *AuthController) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := ac.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		// Don't reveal whether the email exists
		c.JSON(http.StatusOK, gin.H{"message": "If the email exists, a reset token has been sent"})
		return
	}

	if _, err := ac.emailService.SendPasswordReset(user.Email, user.FirstName); err != nil {
		fmt.Printf("Failed to send password reset email: %v\n", err)
		utils.SendError(c, http.StatusInternalServerError, "Failed to send password reset email")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "If the email exists, a reset token has been sent"})
}

type ResetPasswordRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

func (ac *AuthController) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := ac.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid or expired reset token")
		return
	}

	if !ac.emailService.ConsumeResetToken(req.Email, req.Token) {
		utils.SendError(c, http.StatusBadRequest, "Invalid or expired reset token")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	if err := ac.db.Model(&user).Update("password", string(hashed)).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

func (ac *AuthController) generateJWT(userID, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(time.Hour * 24 * 7).Unix(), // 7 days
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.jwtSecret))
}
