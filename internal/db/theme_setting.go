package db

import "gorm.io/gorm"

// ThemeSetting 保存站点主题配色，逻辑上是 setting_name = "default" 的单例行。
// 首次保存时创建，唯一索引保证并发首存只会成功一次。
type ThemeSetting struct {
	gorm.Model
	SettingName    string  `gorm:"size:50;uniqueIndex;not null"`
	PrimaryColor   string  `gorm:"size:7"`
	SecondaryColor string  `gorm:"size:7"`
	AccentColor    string  `gorm:"size:7"`
	HeroBgOpacity  float64 `gorm:"default:0.3"`
	UpdatedBy      uint
}

// TableName 自定义表名以保持命名一致。
func (ThemeSetting) TableName() string {
	return "theme_settings"
}

// ThemeSettingName 是单例主题行的自然键。
const ThemeSettingName = "default"
