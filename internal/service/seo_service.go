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
	ErrSEONotFound     = errors.New("seo settings not found")
	ErrSEOPathRequired = errors.New("page path is required")
)

// SEOSettingsView is the decoded projection of one seo_settings row.
type SEOSettingsView struct {
	PagePath        string   `json:"page_path"`
	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
	OGTitle         string   `json:"og_title"`
	OGDescription   string   `json:"og_description"`
	OGImage         string   `json:"og_image"`
	Keywords        []string `json:"keywords"`
}

// SEOInput carries the per-path settings accepted from the admin form.
type SEOInput struct {
	PagePath        string
	MetaTitle       string
	MetaDescription string
	OGTitle         string
	OGDescription   string
	OGImage         string
	Keywords        []string
}

// SEOService reads and upserts per-path SEO settings. An absent row is
// expected; the frontend renders its own defaults.
type SEOService struct {
	db *gorm.DB
}

// NewSEOService constructs an SEOService.
func NewSEOService(gdb *gorm.DB) *SEOService {
	return &SEOService{db: gdb}
}

// GetByPath fetches the settings for one page path.
func (s *SEOService) GetByPath(path string) (SEOSettingsView, error) {
	var row db.SEOSetting
	err := s.db.Where("page_path = ?", strings.TrimSpace(path)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return SEOSettingsView{}, ErrSEONotFound
	}
	if err != nil {
		return SEOSettingsView{}, fmt.Errorf("load seo settings: %w", err)
	}
	return decodeSEORow(row), nil
}

// List returns the settings of every configured path.
func (s *SEOService) List() ([]SEOSettingsView, error) {
	var rows []db.SEOSetting
	if err := s.db.Order("page_path asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]SEOSettingsView, 0, len(rows))
	for _, row := range rows {
		views = append(views, decodeSEORow(row))
	}
	return views, nil
}

// Save upserts the row for input.PagePath following the same
// find-then-update-else-insert contract as the theme singleton.
func (s *SEOService) Save(input SEOInput, updatedBy uint) (SEOSettingsView, error) {
	path := strings.TrimSpace(input.PagePath)
	if path == "" {
		return SEOSettingsView{}, ErrSEOPathRequired
	}

	keywords := input.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	encoded, err := json.Marshal(keywords)
	if err != nil {
		return SEOSettingsView{}, fmt.Errorf("encode keywords: %w", err)
	}

	err = upsertSingleton(s.db, "page_path", path, func(row *db.SEOSetting) {
		row.PagePath = path
		row.MetaTitle = strings.TrimSpace(input.MetaTitle)
		row.MetaDescription = strings.TrimSpace(input.MetaDescription)
		row.OGTitle = strings.TrimSpace(input.OGTitle)
		row.OGDescription = strings.TrimSpace(input.OGDescription)
		row.OGImage = strings.TrimSpace(input.OGImage)
		row.Keywords = string(encoded)
		row.UpdatedBy = updatedBy
	})
	if err != nil {
		return SEOSettingsView{}, fmt.Errorf("save seo settings: %w", err)
	}

	return s.GetByPath(path)
}

func decodeSEORow(row db.SEOSetting) SEOSettingsView {
	view := SEOSettingsView{
		PagePath:        row.PagePath,
		MetaTitle:       row.MetaTitle,
		MetaDescription: row.MetaDescription,
		OGTitle:         row.OGTitle,
		OGDescription:   row.OGDescription,
		OGImage:         row.OGImage,
		Keywords:        []string{},
	}
	if raw := strings.TrimSpace(row.Keywords); raw != "" {
		// A malformed stored list degrades to empty rather than failing the page.
		var keywords []string
		if err := json.Unmarshal([]byte(raw), &keywords); err == nil && keywords != nil {
			view.Keywords = keywords
		}
	}
	return view
}
