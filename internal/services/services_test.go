package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/database"
	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/dtos"
	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

func registerUser(t *testing.T, users *UserService, username string, role models.Role) *models.User {
	t.Helper()
	u, err := users.Register(&dtos.RegisterForm{
		Username: username,
		Email:    username + "@example.com",
		Password: "hunter22",
		Role:     string(role),
	})
	require.NoError(t, err)
	return u
}

func jobForm(title, company, location string) *dtos.JobForm {
	return &dtos.JobForm{
		Title:       title,
		Description: "desc of " + title,
		Salary:      "₹8-10 LPA",
		Location:    location,
		Company:     company,
	}
}
