// File: /models/status.go
package models

import (
	"time"
	"unicode/utf8"
)

type Status struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;index"`
	Content   string    `json:"content" gorm:"not null;type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// Validate collects every violation for one attempt.
func (s *Status) Validate() ValidationErrors {
	errs := ValidationErrors{}

	if s.Content == "" {
		errs.Add("content", "can't be blank")
	} else if utf8.RuneCountInString(s.Content) < 2 {
		errs.Add("content", "is too short (minimum is 2 characters)")
	}
	if s.UserID == "" {
		errs.Add("user_id", "can't be blank")
	}

	return errs
}
