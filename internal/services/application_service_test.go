package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/models"
)

func TestApplyOncePerJobAndUser(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	jobs := NewJobService(db)
	apps := NewApplicationService(db)

	employer := registerUser(t, users, "acme", models.RoleEmployer)
	seeker := registerUser(t, users, "bob", models.RoleJobseeker)

	job, err := jobs.Create(employer.ID, jobForm("Content Writer", "WriteWave", "Remote"))
	require.NoError(t, err)

	app, err := apps.Apply(job.ID, seeker.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, app.JobID)
	assert.Equal(t, seeker.ID, app.UserID)

	_, err = apps.Apply(job.ID, seeker.ID)
	assert.ErrorIs(t, err, ErrAlreadyApplied)

	var count int64
	require.NoError(t, db.Model(&models.Application{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestApplySameJobDifferentUsers(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	jobs := NewJobService(db)
	apps := NewApplicationService(db)

	employer := registerUser(t, users, "acme", models.RoleEmployer)
	bob := registerUser(t, users, "bob", models.RoleJobseeker)
	carol := registerUser(t, users, "carol", models.RoleJobseeker)

	job, err := jobs.Create(employer.ID, jobForm("Recruiter", "HireRight", "Jaipur"))
	require.NoError(t, err)

	_, err = apps.Apply(job.ID, bob.ID)
	require.NoError(t, err)
	_, err = apps.Apply(job.ID, carol.ID)
	require.NoError(t, err, "the one-application rule is per (job, user) pair")
}

func TestListForUserPreloadsJob(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	jobs := NewJobService(db)
	apps := NewApplicationService(db)

	employer := registerUser(t, users, "acme", models.RoleEmployer)
	seeker := registerUser(t, users, "bob", models.RoleJobseeker)

	first, err := jobs.Create(employer.ID, jobForm("SEO Specialist", "RankHigh", "Delhi"))
	require.NoError(t, err)
	second, err := jobs.Create(employer.ID, jobForm("Video Editor", "VidEditz", "Mumbai"))
	require.NoError(t, err)

	_, err = apps.Apply(first.ID, seeker.ID)
	require.NoError(t, err)
	_, err = apps.Apply(second.ID, seeker.ID)
	require.NoError(t, err)

	got, err := apps.ListForUser(seeker.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Newest application first, each with its job embedded.
	assert.Equal(t, "Video Editor", got[0].Job.Title)
	assert.Equal(t, "SEO Specialist", got[1].Job.Title)

	other, err := apps.ListForUser(employer.ID)
	require.NoError(t, err)
	assert.Empty(t, other)
}
