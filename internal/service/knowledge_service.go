package service

import (
	"errors"
	"strings"

	"github.com/schoolsite/internal/db"
	"gorm.io/gorm"
)

var (
	ErrKnowledgeNotFound         = errors.New("knowledge entry not found")
	ErrKnowledgeQuestionRequired = errors.New("knowledge question is required")
	ErrKnowledgeAnswerRequired   = errors.New("knowledge answer is required")
)

// KnowledgeService manages the chatbot knowledge base entries.
type KnowledgeService struct {
	db *gorm.DB
}

// KnowledgeInput represents fields accepted when creating or updating a
// knowledge entry.
type KnowledgeInput struct {
	Question string
	Answer   string
	Category string
	IsActive bool
}

// NewKnowledgeService creates a KnowledgeService instance.
func NewKnowledgeService(gdb *gorm.DB) *KnowledgeService {
	return &KnowledgeService{db: gdb}
}

// List returns all knowledge entries in insertion order.
func (s *KnowledgeService) List() ([]db.ChatbotKnowledge, error) {
	var entries []db.ChatbotKnowledge
	if err := s.db.Order("id asc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListActive returns the entries that feed the chatbot context, in
// fetch order.
func (s *KnowledgeService) ListActive() ([]db.ChatbotKnowledge, error) {
	var entries []db.ChatbotKnowledge
	if err := s.db.Where("is_active = ?", true).Order("id asc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Get fetches a knowledge entry by id.
func (s *KnowledgeService) Get(id uint) (*db.ChatbotKnowledge, error) {
	var entry db.ChatbotKnowledge
	if err := s.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKnowledgeNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// Create inserts a new knowledge entry.
func (s *KnowledgeService) Create(input KnowledgeInput) (*db.ChatbotKnowledge, error) {
	if err := validateKnowledgeInput(input); err != nil {
		return nil, err
	}

	entry := db.ChatbotKnowledge{
		Question: strings.TrimSpace(input.Question),
		Answer:   strings.TrimSpace(input.Answer),
		Category: strings.TrimSpace(input.Category),
		IsActive: input.IsActive,
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Update modifies an existing knowledge entry.
func (s *KnowledgeService) Update(id uint, input KnowledgeInput) (*db.ChatbotKnowledge, error) {
	if err := validateKnowledgeInput(input); err != nil {
		return nil, err
	}

	var entry db.ChatbotKnowledge
	if err := s.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKnowledgeNotFound
		}
		return nil, err
	}

	entry.Question = strings.TrimSpace(input.Question)
	entry.Answer = strings.TrimSpace(input.Answer)
	entry.Category = strings.TrimSpace(input.Category)
	entry.IsActive = input.IsActive

	// IsActive may flip to false, so save the full row, not sparse updates.
	if err := s.db.Select("*").Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Delete removes a knowledge entry.
func (s *KnowledgeService) Delete(id uint) error {
	var entry db.ChatbotKnowledge
	if err := s.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrKnowledgeNotFound
		}
		return err
	}
	return s.db.Delete(&entry).Error
}

func validateKnowledgeInput(input KnowledgeInput) error {
	if strings.TrimSpace(input.Question) == "" {
		return ErrKnowledgeQuestionRequired
	}
	if strings.TrimSpace(input.Answer) == "" {
		return ErrKnowledgeAnswerRequired
	}
	return nil
}
