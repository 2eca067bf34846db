package db

import "gorm.io/gorm"

// SEOSetting 按页面路径保存 SEO/OG 元信息，一条路径对应一行。
// Keywords 以 JSON 数组文本存储，缺行时前端回退默认值。
type SEOSetting struct {
	gorm.Model
	PagePath        string `gorm:"size:255;uniqueIndex;not null"`
	MetaTitle       string `gorm:"size:255"`
	MetaDescription string `gorm:"type:text"`
	OGTitle         string `gorm:"size:255"`
	OGDescription   string `gorm:"type:text"`
	OGImage         string `gorm:"size:255"`
	Keywords        string `gorm:"type:text"`
	UpdatedBy       uint
}

// TableName 自定义表名以保持命名一致。
func (SEOSetting) TableName() string {
	return "seo_settings"
}
