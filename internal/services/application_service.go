package services

import (
	"errors"

	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/models"
	"gorm.io/gorm"
)

// ErrAlreadyApplied rejects a second application to the same job by the
// same user.
var ErrAlreadyApplied = errors.New("already applied to this job")

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Apply records userID's application to jobID. The duplicate check is a
// read-then-write without a unique index, matching the intended
// one-application-per-pair rule under sequential submission.
func (s *ApplicationService) Apply(jobID, userID uint) (*models.Application, error) {
	var count int64
	err := s.DB.Model(&models.Application{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyApplied
	}

	app := &models.Application{JobID: jobID, UserID: userID}
	if err := s.DB.Create(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

// ListForUser returns the user's applications with each Job preloaded, so
// the dashboard renders from a single pair of queries rather than one query
// per application.
func (s *ApplicationService) ListForUser(userID uint) ([]models.Application, error) {
	var apps []models.Application
	err := s.DB.Preload("Job").
		Where("user_id = ?", userID).
		Order("id desc").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}
