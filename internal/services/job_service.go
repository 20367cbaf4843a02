package services

import (
	"errors"
	"strings"

	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/dtos"
	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/models"
	"gorm.io/gorm"
)

var (
	ErrJobNotFound = errors.New("job not found")
	// ErrNotJobOwner covers every employer/ownership mismatch on mutation.
	ErrNotJobOwner = errors.New("job belongs to another employer")
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// Search returns jobs newest-first. A non-empty query keeps only jobs whose
// title, company, or location contains it, case-insensitively.
func (s *JobService) Search(query string) ([]models.Job, error) {
	var jobs []models.Job
	db := s.DB.Order("id desc")
	if q := strings.TrimSpace(query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		db = db.Where(
			"LOWER(title) LIKE ? OR LOWER(company) LIKE ? OR LOWER(location) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if err := db.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *JobService) ListByEmployer(employerID uint) ([]models.Job, error) {
	var jobs []models.Job
	if err := s.DB.Where("employer_id = ?", employerID).Order("id desc").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListAll feeds the admin dashboard.
func (s *JobService) ListAll() ([]models.Job, error) {
	var jobs []models.Job
	if err := s.DB.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *JobService) Get(id uint) (*models.Job, error) {
	var job models.Job
	if err := s.DB.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// Create inserts a job owned by employerID. The owner always comes from the
// authenticated session, never from the form.
func (s *JobService) Create(employerID uint, req *dtos.JobForm) (*models.Job, error) {
	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
		Salary:      req.Salary,
		Location:    req.Location,
		Company:     req.Company,
		EmployerID:  employerID,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Update overwrites the descriptive fields of a job the employer owns.
// Ownership is immutable.
func (s *JobService) Update(id, employerID uint, req *dtos.JobForm) (*models.Job, error) {
	job, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != employerID {
		return nil, ErrNotJobOwner
	}

	job.Title = req.Title
	job.Description = req.Description
	job.Salary = req.Salary
	job.Location = req.Location
	job.Company = req.Company
	if err := s.DB.Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Delete removes a job the employer owns together with its applications.
// The cleanup runs in one transaction so a job row can never outlive the
// delete while leaving applications behind.
func (s *JobService) Delete(id, employerID uint) error {
	job, err := s.Get(id)
	if err != nil {
		return err
	}
	if job.EmployerID != employerID {
		return ErrNotJobOwner
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", job.ID).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(job).Error
	})
}
