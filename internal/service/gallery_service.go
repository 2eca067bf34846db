package service

import (
	"errors"
	"strings"

	"github.com/schoolsite/internal/db"
	"gorm.io/gorm"
)

var (
	ErrGalleryNotFound      = errors.New("gallery item not found")
	ErrGalleryImageRequired = errors.New("gallery image is required")
	ErrGalleryTitleRequired = errors.New("gallery title is required")
)

// GalleryService handles gallery CRUD.
type GalleryService struct {
	db *gorm.DB
}

// GalleryInput represents fields accepted when creating or updating a
// gallery item.
type GalleryInput struct {
	Title        string
	Description  string
	ImageURL     string
	ThumbnailURL string
	Category     string
	DisplayOrder int
	CreatedBy    uint
}

// NewGalleryService creates a GalleryService instance.
func NewGalleryService(gdb *gorm.DB) *GalleryService {
	return &GalleryService{db: gdb}
}

// List returns gallery items in visual order (display_order ascending).
// A non-empty category filters case-insensitively, so "Sports" matches
// items stored as "sports".
func (s *GalleryService) List(category string) ([]db.GalleryItem, error) {
	query := s.db.Model(&db.GalleryItem{})
	if trimmed := strings.TrimSpace(category); trimmed != "" {
		query = query.Where("LOWER(category) = LOWER(?)", trimmed)
	}

	var items []db.GalleryItem
	if err := query.Order("display_order asc").Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a gallery item by id.
func (s *GalleryService) Get(id uint) (*db.GalleryItem, error) {
	var item db.GalleryItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new gallery item; a zero display order is assigned
// after the current maximum.
func (s *GalleryService) Create(input GalleryInput) (*db.GalleryItem, error) {
	if err := validateGalleryInput(input); err != nil {
		return nil, err
	}

	displayOrder := input.DisplayOrder
	if displayOrder == 0 {
		order, err := s.nextDisplayOrder()
		if err != nil {
			return nil, err
		}
		displayOrder = order
	}

	item := db.GalleryItem{
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		ImageURL:     strings.TrimSpace(input.ImageURL),
		ThumbnailURL: strings.TrimSpace(input.ThumbnailURL),
		Category:     strings.TrimSpace(input.Category),
		DisplayOrder: displayOrder,
		CreatedBy:    input.CreatedBy,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update modifies an existing gallery item.
func (s *GalleryService) Update(id uint, input GalleryInput) (*db.GalleryItem, error) {
	if err := validateGalleryInput(input); err != nil {
		return nil, err
	}

	var item db.GalleryItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryNotFound
		}
		return nil, err
	}

	item.Title = strings.TrimSpace(input.Title)
	item.Description = strings.TrimSpace(input.Description)
	item.ImageURL = strings.TrimSpace(input.ImageURL)
	item.ThumbnailURL = strings.TrimSpace(input.ThumbnailURL)
	item.Category = strings.TrimSpace(input.Category)
	item.DisplayOrder = input.DisplayOrder

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a gallery item.
func (s *GalleryService) Delete(id uint) error {
	var item db.GalleryItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGalleryNotFound
		}
		return err
	}
	return s.db.Delete(&item).Error
}

func validateGalleryInput(input GalleryInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrGalleryTitleRequired
	}
	if strings.TrimSpace(input.ImageURL) == "" {
		return ErrGalleryImageRequired
	}
	return nil
}

func (s *GalleryService) nextDisplayOrder() (int, error) {
	var maxOrder int
	if err := s.db.Model(&db.GalleryItem{}).
		Select("COALESCE(MAX(display_order), 0)").
		Scan(&maxOrder).Error; err != nil {
		return 0, err
	}
	return maxOrder + 1, nil
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func normalizePerPage(perPage, fallback int) int {
	if perPage <= 0 {
		return fallback
	}
	return perPage
}

func calculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	if total == 0 {
		return 1
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
