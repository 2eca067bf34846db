package db

import "gorm.io/gorm"

// ContactSubmission 保存公开联系表单提交，后台只读展示。
type ContactSubmission struct {
	gorm.Model
	Name    string `gorm:"size:120;not null"`
	Email   string `gorm:"size:255;not null"`
	Phone   string `gorm:"size:30"`
	Subject string `gorm:"size:255"`
	Message string `gorm:"type:text;not null"`
	Status  string `gorm:"size:20;default:new"` // new, read, responded
}

const (
	ContactStatusNew       = "new"
	ContactStatusRead      = "read"
	ContactStatusResponded = "responded"
)
