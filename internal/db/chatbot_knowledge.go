package db

import "gorm.io/gorm"

// ChatbotKnowledge 保存问答知识条目，仅 is_active 的行会进入聊天上下文。
type ChatbotKnowledge struct {
	gorm.Model
	Question string `gorm:"type:text;not null"`
	Answer   string `gorm:"type:text;not null"`
	Category string `gorm:"size:50"`
	IsActive bool   `gorm:"default:true"`
}

// TableName 自定义表名以保持命名一致。
func (ChatbotKnowledge) TableName() string {
	return "chatbot_knowledge"
}
