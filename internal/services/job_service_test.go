package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/models"
)

func TestSearch(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	jobs := NewJobService(db)

	employer := registerUser(t, users, "acme", models.RoleEmployer)
	_, err := jobs.Create(employer.ID, jobForm("Backend Developer", "CodeBase", "Hyderabad"))
	require.NoError(t, err)
	_, err = jobs.Create(employer.ID, jobForm("Data Analyst", "DataWorks", "Pune"))
	require.NoError(t, err)
	_, err = jobs.Create(employer.ID, jobForm("Frontend Developer", "TechNova", "Bangalore"))
	require.NoError(t, err)

	t.Run("empty query returns all newest-first", func(t *testing.T) {
		got, err := jobs.Search("")
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "Frontend Developer", got[0].Title)
		assert.Equal(t, "Backend Developer", got[2].Title)
	})

	t.Run("matches title case-insensitively", func(t *testing.T) {
		got, err := jobs.Search("DEVELOPER")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("matches company", func(t *testing.T) {
		got, err := jobs.Search("dataworks")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Data Analyst", got[0].Title)
	})

	t.Run("matches location", func(t *testing.T) {
		got, err := jobs.Search("bangalore")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Frontend Developer", got[0].Title)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		got, err := jobs.Search("zeppelin")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestUpdateOwnershipCheck(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	jobs := NewJobService(db)

	owner := registerUser(t, users, "owner", models.RoleEmployer)
	rival := registerUser(t, users, "rival", models.RoleEmployer)

	job, err := jobs.Create(owner.ID, jobForm("QA Tester", "BugSquashers", "Chennai"))
	require.NoError(t, err)

	_, err = jobs.Update(job.ID, rival.ID, jobForm("Hijacked", "Evil Co", "Nowhere"))
	assert.ErrorIs(t, err, ErrNotJobOwner)

	unchanged, err := jobs.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, "QA Tester", unchanged.Title)
	assert.Equal(t, owner.ID, unchanged.EmployerID)

	updated, err := jobs.Update(job.ID, owner.ID, jobForm("QA Engineer", "BugSquashers", "Chennai"))
	require.NoError(t, err)
	assert.Equal(t, "QA Engineer", updated.Title)
	assert.Equal(t, owner.ID, updated.EmployerID, "ownership never changes on edit")
}

func TestDeleteOwnershipCheck(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	jobs := NewJobService(db)

	owner := registerUser(t, users, "owner", models.RoleEmployer)
	rival := registerUser(t, users, "rival", models.RoleEmployer)

	job, err := jobs.Create(owner.ID, jobForm("HR Executive", "PeopleFirst", "Noida"))
	require.NoError(t, err)

	assert.ErrorIs(t, jobs.Delete(job.ID, rival.ID), ErrNotJobOwner)
	_, err = jobs.Get(job.ID)
	assert.NoError(t, err, "rejected delete must not remove the row")

	require.NoError(t, jobs.Delete(job.ID, owner.ID))
	_, err = jobs.Get(job.ID)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestDeleteCascadesApplications(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	jobs := NewJobService(db)
	apps := NewApplicationService(db)

	employer := registerUser(t, users, "acme", models.RoleEmployer)
	seeker := registerUser(t, users, "bob", models.RoleJobseeker)

	job, err := jobs.Create(employer.ID, jobForm("Cloud Architect", "SkyNet", "Bangalore"))
	require.NoError(t, err)
	keep, err := jobs.Create(employer.ID, jobForm("Sales Manager", "SellWell", "Mumbai"))
	require.NoError(t, err)

	_, err = apps.Apply(job.ID, seeker.ID)
	require.NoError(t, err)
	_, err = apps.Apply(keep.ID, seeker.ID)
	require.NoError(t, err)

	require.NoError(t, jobs.Delete(job.ID, employer.ID))

	remaining, err := apps.ListForUser(seeker.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1, "applications for the deleted job must go with it")
	assert.Equal(t, keep.ID, remaining[0].JobID)
}

func TestGetMissingJob(t *testing.T) {
	jobs := NewJobService(newTestDB(t))
	_, err := jobs.Get(9999)
	assert.ErrorIs(t, err, ErrJobNotFound)
}
