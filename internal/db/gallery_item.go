package db

import "gorm.io/gorm"

// GalleryItem 定义校园相册图片模型
// Category 为自由文本，展示时与固定分类列表做大小写不敏感匹配
// DisplayOrder 越小越靠前
type GalleryItem struct {
	gorm.Model
	Title        string `gorm:"not null"`
	Description  string `gorm:"type:text"`
	ImageURL     string `gorm:"size:255;not null"`
	ThumbnailURL string `gorm:"size:255"`
	Category     string `gorm:"size:50"`
	DisplayOrder int    `gorm:"default:0"`
	CreatedBy    uint
}

// GalleryCategories 是前台筛选使用的固定分类展示列表。
var GalleryCategories = []string{"Events", "Sports", "Academics", "Campus", "Celebrations"}
