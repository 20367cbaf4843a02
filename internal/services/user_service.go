package services

import (
	"errors"

	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/dtos"
	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrEmailTaken is returned when the pre-insert check finds the email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrCredentialTaken is the commit-time variant: a concurrent insert won
	// the race on the username or email unique index.
	ErrCredentialTaken = errors.New("username or email already exists")
	// ErrInvalidRole rejects registrations outside the closed role set.
	ErrInvalidRole = errors.New("unknown role")
	// ErrInvalidCredentials deliberately does not say which part was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Register creates a user with a bcrypt-hashed password. The duplicate-email
// pre-check gives the friendly error; the ErrDuplicatedKey branch covers two
// registrations racing past the pre-check, in which case gorm has already
// rolled the insert back.
func (s *UserService) Register(req *dtos.RegisterForm) (*models.User, error) {
	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := s.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCredentialTaken
		}
		return nil, err
	}
	return user, nil
}

// Authenticate looks the user up by username and verifies the password.
// bcrypt's comparison is constant-time over the hash.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListAll feeds the admin dashboard.
func (s *UserService) ListAll() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
