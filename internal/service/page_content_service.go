package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/schoolsite/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPageUnknown        = errors.New("unknown page name")
	ErrPageNotFound       = errors.New("page content not found")
	ErrPageContentInvalid = errors.New("stored page content is not a valid document")
)

// PageContentService reads and replaces the typed per-page documents.
// Saves always transmit the entire document; the storage layer never
// merges partial fields, so concurrent editors are last-write-wins.
type PageContentService struct {
	db *gorm.DB
}

// NewPageContentService returns a new PageContentService instance.
func NewPageContentService(gdb *gorm.DB) *PageContentService {
	return &PageContentService{db: gdb}
}

// GetHome fetches the home document. A missing row is a normal outcome
// and yields the default document; only transport or shape failures
// return an error alongside the default.
func (s *PageContentService) GetHome() (HomeContent, error) {
	doc := DefaultHomeContent()
	err := s.loadDocument(db.PageNameHome, &doc)
	return doc.Normalize(), err
}

// GetAbout fetches the about document, defaulting like GetHome.
func (s *PageContentService) GetAbout() (AboutContent, error) {
	doc := DefaultAboutContent()
	err := s.loadDocument(db.PageNameAbout, &doc)
	return doc.Normalize(), err
}

// GetContact fetches the contact document, defaulting like GetHome.
func (s *PageContentService) GetContact() (ContactContent, error) {
	doc := DefaultContactContent()
	err := s.loadDocument(db.PageNameContact, &doc)
	return doc, err
}

// SaveHome replaces the home document as a whole.
func (s *PageContentService) SaveHome(content HomeContent, updatedBy uint) error {
	return s.saveDocument(db.PageNameHome, content.Normalize(), updatedBy)
}

// SaveAbout replaces the about document as a whole.
func (s *PageContentService) SaveAbout(content AboutContent, updatedBy uint) error {
	return s.saveDocument(db.PageNameAbout, content.Normalize(), updatedBy)
}

// SaveContact replaces the contact document as a whole.
func (s *PageContentService) SaveContact(content ContactContent, updatedBy uint) error {
	return s.saveDocument(db.PageNameContact, content, updatedBy)
}

func (s *PageContentService) loadDocument(pageName string, out interface{}) error {
	var row db.PageContent
	if err := s.db.Where("page_name = ?", pageName).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("load %s content: %w", pageName, err)
	}

	raw := strings.TrimSpace(row.Content)
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("%w: %s", ErrPageContentInvalid, pageName)
	}
	return nil
}

func (s *PageContentService) saveDocument(pageName string, doc interface{}, updatedBy uint) error {
	if !db.IsValidPageName(pageName) {
		return ErrPageUnknown
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s content: %w", pageName, err)
	}

	result := s.db.Model(&db.PageContent{}).
		Where("page_name = ?", pageName).
		Updates(map[string]interface{}{
			"content":    string(payload),
			"updated_by": updatedBy,
		})
	if result.Error != nil {
		return fmt.Errorf("save %s content: %w", pageName, result.Error)
	}
	if result.RowsAffected == 0 {
		// Rows are pre-seeded at Init; the admin workflow never creates them.
		return ErrPageNotFound
	}
	return nil
}
