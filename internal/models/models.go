package models

import (
	"time"
)

// Role is the closed set of account types. It drives every authorization
// branch, so it is a named type rather than a loose string.
type Role string

const (
	RoleJobseeker Role = "jobseeker"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the three known roles. Registration
// rejects anything else; the dashboard still keeps a forbidden default
// branch because the compiler cannot prove a switch over Role exhaustive.
func (r Role) Valid() bool {
	switch r {
	case RoleJobseeker, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	// Bcrypt hash, never the raw secret.
	PasswordHash string `gorm:"not null" json:"-"`
	Role         Role   `gorm:"type:varchar(20);not null" json:"role"`
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Salary      string `json:"salary"`
	Location    string `json:"location"`
	Company     string `json:"company"`

	// Owning employer. Handler logic guarantees the referenced user has the
	// employer role; the schema only enforces the reference itself.
	EmployerID uint `gorm:"index;not null" json:"employer_id"`

	// 'omitempty' prevents infinite loops when fetching a Job -> Applications -> Job -> ...
	Applications []Application `gorm:"constraint:OnDelete:CASCADE" json:"applications,omitempty"`
}

// Application links a job-seeker to a job. At most one row may exist per
// (JobID, UserID) pair; the service layer enforces that with a pre-insert
// existence check.
type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	JobID  uint `gorm:"index;not null" json:"job_id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	// Association: GORM needs Preload() to fill this.
	Job Job `json:"job"`
}
