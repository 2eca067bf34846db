package service

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/schoolsite/internal/db"
	"gorm.io/gorm"
)

var (
	ErrThemeColorInvalid   = errors.New("theme color must be a #rrggbb hex value")
	ErrThemeOpacityInvalid = errors.New("hero background opacity must be between 0 and 1")
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ThemeSettings describes the site theme colors.
type ThemeSettings struct {
	PrimaryColor   string  `json:"primary_color"`
	SecondaryColor string  `json:"secondary_color"`
	AccentColor    string  `json:"accent_color"`
	HeroBgOpacity  float64 `json:"hero_bg_opacity"`
}

// DefaultThemeSettings returns the colors rendered when no row exists.
func DefaultThemeSettings() ThemeSettings {
	return ThemeSettings{
		PrimaryColor:   "#2563eb",
		SecondaryColor: "#4f46e5",
		AccentColor:    "#06b6d4",
		HeroBgOpacity:  0.3,
	}
}

// ThemeService reads and saves the singleton theme row.
type ThemeService struct {
	db *gorm.DB
}

// NewThemeService constructs a ThemeService.
func NewThemeService(gdb *gorm.DB) *ThemeService {
	return &ThemeService{db: gdb}
}

// GetSettings reads the theme, falling back to defaults when the
// singleton row has not been created yet.
func (s *ThemeService) GetSettings() (ThemeSettings, error) {
	var row db.ThemeSetting
	err := s.db.Where("setting_name = ?", db.ThemeSettingName).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DefaultThemeSettings(), nil
	}
	if err != nil {
		return DefaultThemeSettings(), fmt.Errorf("load theme settings: %w", err)
	}

	return ThemeSettings{
		PrimaryColor:   row.PrimaryColor,
		SecondaryColor: row.SecondaryColor,
		AccentColor:    row.AccentColor,
		HeroBgOpacity:  row.HeroBgOpacity,
	}, nil
}

// Save validates and upserts the singleton row: the first save inserts
// it, every later save updates that same row. A lost first-save race
// surfaces the unique-index violation as a save failure for the user to
// retry, which then follows the update path.
func (s *ThemeService) Save(input ThemeSettings, updatedBy uint) (ThemeSettings, error) {
	for _, color := range []string{input.PrimaryColor, input.SecondaryColor, input.AccentColor} {
		if !hexColorPattern.MatchString(color) {
			return ThemeSettings{}, ErrThemeColorInvalid
		}
	}
	if input.HeroBgOpacity < 0 || input.HeroBgOpacity > 1 {
		return ThemeSettings{}, ErrThemeOpacityInvalid
	}

	err := upsertSingleton(s.db, "setting_name", db.ThemeSettingName, func(row *db.ThemeSetting) {
		row.SettingName = db.ThemeSettingName
		row.PrimaryColor = input.PrimaryColor
		row.SecondaryColor = input.SecondaryColor
		row.AccentColor = input.AccentColor
		row.HeroBgOpacity = input.HeroBgOpacity
		row.UpdatedBy = updatedBy
	})
	if err != nil {
		return ThemeSettings{}, fmt.Errorf("save theme settings: %w", err)
	}
	return input, nil
}
