// File: /models/user_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserValidatePresence(t *testing.T) {
	errs := (&User{}).Validate()

	assert.NotEmpty(t, errs.On("first_name"))
	assert.NotEmpty(t, errs.On("last_name"))
	assert.NotEmpty(t, errs.On("profile_name"))
}

func TestUserValidateProfileNameFormat(t *testing.T) {
	tests := []struct {
		name        string
		profileName string
		wantErr     bool
	}{
		{name: "simple", profileName: "martha1", wantErr: false},
		{name: "hyphen and underscore", profileName: "martha-chumo_1", wantErr: false},
		{name: "spaces", profileName: "My Profile Name With Spaces", wantErr: true},
		{name: "punctuation", profileName: "martha.chumo", wantErr: true},
		{name: "slash", profileName: "martha/chumo", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &User{
				FirstName:   "Martha",
				LastName:    "Chumo",
				ProfileName: tt.profileName,
			}
			errs := user.Validate()
			if tt.wantErr {
				assert.Contains(t, errs.On("profile_name"), "must be formatted correctly")
			} else {
				assert.False(t, errs.Any(), "expected no violations, got %v", errs)
			}
		})
	}
}

func TestUserFullName(t *testing.T) {
	user := &User{FirstName: "Martha", LastName: "Chumo"}
	assert.Equal(t, "Martha Chumo", user.FullName())
}
