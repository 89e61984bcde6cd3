// File: /services/service_test.go
package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"treebook-api/database"
	"treebook-api/models"
)

// testDB opens a fresh in-memory database with the real schema, including
// the composite unique index the pair engine relies on.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// One in-memory SQLite database per connection; pin the pool to a
	// single connection so every query sees the same schema.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

// createUser inserts a user directly, bypassing the identity store's
// validation, for tests that just need rows to relate.
func createUser(t *testing.T, db *gorm.DB, id, first, last, profileName string) *models.User {
	t.Helper()

	user := &models.User{
		ID:          id,
		FirstName:   first,
		LastName:    last,
		ProfileName: profileName,
		Email:       profileName + "@example.com",
		Password:    "irrelevant",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
