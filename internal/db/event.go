package db

import "gorm.io/gorm"

// Event 定义学校活动模型。slug 全局唯一，仅 published 状态对外可见。
// 日期与时间保持来源格式的纯文本（2006-01-02 / 15:04），存储层不做解析。
type Event struct {
	gorm.Model
	Title         string `gorm:"not null"`
	Slug          string `gorm:"size:160;uniqueIndex;not null"`
	Description   string `gorm:"type:text"`
	Content       string `gorm:"type:text"`
	EventDate     string `gorm:"size:10"`
	StartTime     string `gorm:"size:5"`
	EndTime       string `gorm:"size:5"`
	Location      string `gorm:"size:255"`
	FeaturedImage string `gorm:"size:255"`
	Status        string `gorm:"size:20;default:draft"` // draft, published, archived
	CreatedBy     uint
}

const (
	EventStatusDraft     = "draft"
	EventStatusPublished = "published"
	EventStatusArchived  = "archived"
)
