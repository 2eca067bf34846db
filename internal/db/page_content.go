package db

import "gorm.io/gorm"

// PageContent 保存单个公开页面的半结构化内容文档。
// 每个页面名恰好对应一行，content 为完整的 JSON 文档，
// 保存时整体替换，存储层从不做字段级合并。
type PageContent struct {
	gorm.Model
	PageName  string `gorm:"size:20;uniqueIndex;not null"`
	Content   string `gorm:"type:text;not null"`
	UpdatedBy uint
}

// TableName 自定义表名以保持命名一致。
func (PageContent) TableName() string {
	return "page_content"
}

const (
	// PageNameHome 表示首页内容文档。
	PageNameHome = "home"
	// PageNameAbout 表示关于页内容文档。
	PageNameAbout = "about"
	// PageNameContact 表示联系页内容文档。
	PageNameContact = "contact"
)

// PageNames 列出全部合法的页面名，顺序即初始化顺序。
var PageNames = []string{PageNameHome, PageNameAbout, PageNameContact}

// IsValidPageName 判断给定页面名是否在固定枚举内。
func IsValidPageName(name string) bool {
	for _, candidate := range PageNames {
		if name == candidate {
			return true
		}
	}
	return false
}
