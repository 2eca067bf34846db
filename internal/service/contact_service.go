package service

import (
	"errors"
	"regexp"
	"strings"

	"github.com/schoolsite/internal/db"
	"gorm.io/gorm"
)

var (
	ErrContactFieldsMissing = errors.New("name, email, and message are required")
	ErrContactEmailInvalid  = errors.New("invalid email address")
)

// emailPattern is the standard email-shape check used by the public
// form; deliverability is not verified.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactInput carries a public contact form submission.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// ContactService stores public contact submissions and exposes the
// read-only admin inbox.
type ContactService struct {
	db *gorm.DB
}

// NewContactService creates a ContactService instance.
func NewContactService(gdb *gorm.DB) *ContactService {
	return &ContactService{db: gdb}
}

// Submit validates and stores one submission with status "new".
func (s *ContactService) Submit(input ContactInput) (*db.ContactSubmission, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	message := strings.TrimSpace(input.Message)

	if name == "" || email == "" || message == "" {
		return nil, ErrContactFieldsMissing
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrContactEmailInvalid
	}

	submission := db.ContactSubmission{
		Name:    name,
		Email:   email,
		Phone:   strings.TrimSpace(input.Phone),
		Subject: strings.TrimSpace(input.Subject),
		Message: message,
		Status:  db.ContactStatusNew,
	}

	if err := s.db.Create(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

// List returns submissions newest first, optionally filtered by status.
// The inbox is read-only: submissions are never mutated from the admin
// area.
func (s *ContactService) List(status string) ([]db.ContactSubmission, error) {
	query := s.db.Model(&db.ContactSubmission{})
	if trimmed := strings.TrimSpace(status); trimmed != "" {
		query = query.Where("status = ?", trimmed)
	}

	var submissions []db.ContactSubmission
	if err := query.Order("created_at desc").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}
