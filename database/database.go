// File: /database/database.go
package database

import (
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"treebook-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// Duplicate-key and similar driver errors surface as gorm
		// sentinels so callers can errors.Is on them.
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Migrate runs the schema migrations. Kept driver-agnostic: the tests run
// it against SQLite, production against MySQL. The composite unique index
// on user_friendships(user_id, friend_id) comes from the model tags and is
// load-bearing: it rejects the loser of two concurrent requests for the
// same pair.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.UserFriendship{},
		&models.Status{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

// SeedData inserts development fixtures: two users and an accepted
// friendship between them. No-op when users already exist.
func SeedData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	martha := models.User{
		ID:          "00000000-0000-0000-0000-000000000001",
		FirstName:   "Martha",
		LastName:    "Chumo",
		ProfileName: "MarthaChumo",
		Email:       "martha@example.com",
		// "password" hashed with bcrypt cost 10
		Password: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
	}
	joseph := models.User{
		ID:          "00000000-0000-0000-0000-000000000002",
		FirstName:   "Joseph",
		LastName:    "Kariuki",
		ProfileName: "JosephK",
		Email:       "joseph@example.com",
		Password:    "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&martha).Error; err != nil {
			return err
		}
		if err := tx.Create(&joseph).Error; err != nil {
			return err
		}

		pair := []models.UserFriendship{
			{UserID: martha.ID, FriendID: joseph.ID, State: models.FriendshipStateAccepted, Initiator: true},
			{UserID: joseph.ID, FriendID: martha.ID, State: models.FriendshipStateAccepted, Initiator: false},
		}
		if err := tx.Create(&pair).Error; err != nil {
			return err
		}

		status := models.Status{
			UserID:  martha.ID,
			Content: "First post!",
		}
		if err := tx.Create(&status).Error; err != nil {
			return err
		}

		log.Println("Seeded development data")
		return nil
	})
}
