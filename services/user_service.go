// File: /services/user_service.go
package services

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"treebook-api/models"
)

// UserService is the identity store: it owns user creation with collected
// validation and the lookups the rest of the system needs.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Create validates and persists a new user. Field violations are collected
// into one models.ValidationErrors value, including uniqueness of email and
// profile name, so the caller can report every problem at once. The
// plaintext password is hashed before it touches the database.
func (us *UserService) Create(user *models.User, password string) error {
	errs := user.Validate()

	if password == "" {
		errs.Add("password", "can't be blank")
	}

	// Uniqueness pre-checks share the container with the field checks.
	// The unique indexes remain the final word under concurrent creates.
	if user.Email != "" {
		var existing models.User
		if err := us.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
			errs.Add("email", "has already been taken")
		}
	}
	if user.ProfileName != "" {
		var existing models.User
		if err := us.db.Where("profile_name = ?", user.ProfileName).First(&existing).Error; err == nil {
			errs.Add("profile_name", "has already been taken")
		}
	}

	if errs.Any() {
		return errs
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.Password = string(hashed)

	if err := us.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			dup := models.ValidationErrors{}
			dup.Add("profile_name", "has already been taken")
			return dup
		}
		return err
	}

	return nil
}

func (us *UserService) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := us.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (us *UserService) FindByProfileName(profileName string) (*models.User, error) {
	var user models.User
	if err := us.db.First(&user, "profile_name = ?", profileName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies email/password and returns the user on success.
func (us *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := us.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}
