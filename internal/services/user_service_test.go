package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/dtos"
	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/models"
)

func TestRegisterHashesPassword(t *testing.T) {
	users := NewUserService(newTestDB(t))

	u := registerUser(t, users, "alice", models.RoleEmployer)
	assert.NotEqual(t, "hunter22", u.PasswordHash)
	assert.Equal(t, models.RoleEmployer, u.Role)
}

func TestRegisterDuplicateEmailCreatesNoRow(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	registerUser(t, users, "alice", models.RoleEmployer)

	_, err := users.Register(&dtos.RegisterForm{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "other",
		Role:     string(models.RoleJobseeker),
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegisterDuplicateUsernameCaughtAtCommit(t *testing.T) {
	// Same username but a different email slips past the email pre-check and
	// must be caught on the unique index instead of surfacing a raw error.
	users := NewUserService(newTestDB(t))

	registerUser(t, users, "alice", models.RoleEmployer)

	_, err := users.Register(&dtos.RegisterForm{
		Username: "alice",
		Email:    "alice+other@example.com",
		Password: "other",
		Role:     string(models.RoleJobseeker),
	})
	assert.ErrorIs(t, err, ErrCredentialTaken)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	users := NewUserService(newTestDB(t))

	_, err := users.Register(&dtos.RegisterForm{
		Username: "mallory",
		Email:    "mallory@example.com",
		Password: "pw",
		Role:     "superadmin",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestAuthenticate(t *testing.T) {
	users := NewUserService(newTestDB(t))
	registered := registerUser(t, users, "alice", models.RoleJobseeker)

	u, err := users.Authenticate("alice", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, u.ID)

	_, err = users.Authenticate("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = users.Authenticate("nobody", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "unknown user and bad password must be indistinguishable")
}
