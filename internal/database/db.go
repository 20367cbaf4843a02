package database

import (
	"log"

	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens (or creates) the sqlite file at path and migrates the schema.
// TranslateError lets callers detect uniqueness races with
// errors.Is(err, gorm.ErrDuplicatedKey) instead of parsing driver strings.
func Connect(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{}); err != nil {
		return nil, err
	}
	return db, nil
}
