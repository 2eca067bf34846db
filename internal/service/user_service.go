package service

import (
	"errors"
	"strings"

	"github.com/schoolsite/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserEmailRequired  = errors.New("user email is required")
	ErrUserEmailTaken     = errors.New("a user with this email already exists")
	ErrRoleInvalid        = errors.New("role is invalid")
	ErrPermissionDenied   = errors.New("permission denied")
)

// UserService handles authentication and the super-admin-only user
// management feature.
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a UserService instance.
func NewUserService(gdb *gorm.DB) *UserService {
	return &UserService{db: gdb}
}

// Authenticate verifies credentials and returns the matching user.
func (s *UserService) Authenticate(email, password string) (*db.User, error) {
	trimmed := strings.ToLower(strings.TrimSpace(email))
	if trimmed == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var user db.User
	if err := s.db.Where("email = ?", trimmed).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// Get fetches a user by id.
func (s *UserService) Get(id uint) (*db.User, error) {
	var user db.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// List returns all users; gated to roles that may manage users.
func (s *UserService) List(actorRole string) ([]db.User, error) {
	if !db.RoleCanManageUsers(actorRole) {
		return nil, ErrPermissionDenied
	}

	var users []db.User
	if err := s.db.Order("created_at asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Create adds a new admin-area account.
func (s *UserService) Create(actorRole, email, password, fullName, role string) (*db.User, error) {
	if !db.RoleCanManageUsers(actorRole) {
		return nil, ErrPermissionDenied
	}

	trimmedEmail := strings.ToLower(strings.TrimSpace(email))
	if trimmedEmail == "" {
		return nil, ErrUserEmailRequired
	}
	if password == "" {
		return nil, ErrInvalidCredentials
	}
	if role == "" {
		role = db.RoleEditor
	}
	if !db.IsValidRole(role) {
		return nil, ErrRoleInvalid
	}

	var count int64
	if err := s.db.Model(&db.User{}).Where("email = ?", trimmedEmail).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUserEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := db.User{
		Email:    trimmedEmail,
		Password: string(hashed),
		FullName: strings.TrimSpace(fullName),
		Role:     role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateRole changes another user's role.
func (s *UserService) UpdateRole(actorRole string, id uint, role string) (*db.User, error) {
	if !db.RoleCanManageUsers(actorRole) {
		return nil, ErrPermissionDenied
	}
	if !db.IsValidRole(role) {
		return nil, ErrRoleInvalid
	}

	var user db.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Role = role
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
