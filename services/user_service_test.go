// File: /services/user_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treebook-api/models"
)

func TestCreateUser(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db)

	user := &models.User{
		FirstName:   "Martha",
		LastName:    "Chumo",
		ProfileName: "martha1",
		Email:       "martha@example.com",
	}
	require.NoError(t, us.Create(user, "asdfasdf"))

	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "asdfasdf", user.Password, "password must be stored hashed")

	found, err := us.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Martha Chumo", found.FullName())
}

func TestCreateUserCollectsAllViolations(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db)

	err := us.Create(&models.User{}, "")
	require.Error(t, err)

	var verrs models.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	// Every violation is reported in one container, not just the first.
	assert.NotEmpty(t, verrs.On("first_name"))
	assert.NotEmpty(t, verrs.On("last_name"))
	assert.NotEmpty(t, verrs.On("profile_name"))
	assert.NotEmpty(t, verrs.On("password"))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count, "nothing is written on a failed create")
}

func TestCreateUserRejectsMalformedProfileName(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db)

	err := us.Create(&models.User{
		FirstName:   "Martha",
		LastName:    "Chumo",
		ProfileName: "My Profile Name With Spaces",
		Email:       "martha@example.com",
	}, "asdfasdf")
	require.Error(t, err)

	var verrs models.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.On("profile_name"), "must be formatted correctly")
}

func TestCreateUserRejectsDuplicateProfileName(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db)

	require.NoError(t, us.Create(&models.User{
		FirstName:   "Martha",
		LastName:    "Chumo",
		ProfileName: "martha1",
		Email:       "martha@example.com",
	}, "asdfasdf"))

	err := us.Create(&models.User{
		FirstName:   "Other",
		LastName:    "Martha",
		ProfileName: "martha1",
		Email:       "other@example.com",
	}, "asdfasdf")
	require.Error(t, err)

	var verrs models.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.On("profile_name"), "has already been taken")
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db)

	require.NoError(t, us.Create(&models.User{
		FirstName:   "Martha",
		LastName:    "Chumo",
		ProfileName: "martha1",
		Email:       "martha@example.com",
	}, "asdfasdf"))

	err := us.Create(&models.User{
		FirstName:   "Other",
		LastName:    "Martha",
		ProfileName: "martha2",
		Email:       "martha@example.com",
	}, "asdfasdf")
	require.Error(t, err)

	var verrs models.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.On("email"), "has already been taken")
}

func TestFindByProfileName(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db)
	createUser(t, db, "u-martha", "Martha", "Chumo", "MarthaChumo")

	found, err := us.FindByProfileName("MarthaChumo")
	require.NoError(t, err)
	assert.Equal(t, "u-martha", found.ID)

	_, err = us.FindByProfileName("NoSuchUser")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindByIDNotFound(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db)

	_, err := us.FindByID("u-nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthenticate(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db)

	user := &models.User{
		FirstName:   "Martha",
		LastName:    "Chumo",
		ProfileName: "martha1",
		Email:       "martha@example.com",
	}
	require.NoError(t, us.Create(user, "asdfasdf"))

	found, err := us.Authenticate("martha@example.com", "asdfasdf")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = us.Authenticate("martha@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = us.Authenticate("nobody@example.com", "asdfasdf")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
