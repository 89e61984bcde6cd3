// File: /models/user.go
package models

import (
	"time"

	"treebook-api/utils"
)

type User struct {
	ID          string    `json:"id" gorm:"primaryKey;size:191"`
	FirstName   string    `json:"first_name" gorm:"not null;size:255"`
	LastName    string    `json:"last_name" gorm:"not null;size:255"`
	ProfileName string    `json:"profile_name" gorm:"uniqueIndex;not null;size:50"`
	Email       string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password    string    `json:"-" gorm:"not null;size:255"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Statuses    []Status         `json:"statuses,omitempty" gorm:"foreignKey:UserID"`
	Friendships []UserFriendship `json:"friendships,omitempty" gorm:"foreignKey:UserID"`
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Validate checks the profile fields and collects every violation so a
// registration form can show all of them at once. Uniqueness of email and
// profile name is checked against the store by UserService.Create and
// appended to the same container.
func (u *User) Validate() ValidationErrors {
	errs := ValidationErrors{}

	if u.FirstName == "" {
		errs.Add("first_name", "can't be blank")
	}
	if u.LastName == "" {
		errs.Add("last_name", "can't be blank")
	}
	if u.ProfileName == "" {
		errs.Add("profile_name", "can't be blank")
	} else if !utils.IsValidProfileName(u.ProfileName) {
		errs.Add("profile_name", "must be formatted correctly")
	}

	return errs
}
