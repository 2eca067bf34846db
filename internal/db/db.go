package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB 是一个全局的数据库连接实例
var DB *gorm.DB

// Init 初始化数据库连接并执行自动迁移。
// databasePath 为空时将回退到默认值 schoolsite.db。
func Init(databasePath string) error {
	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = "schoolsite.db"
	}

	if err := ensureParentDir(path); err != nil {
		return err
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return err
	}

	// 自动迁移模式，为核心模型创建表
	if err = DB.AutoMigrate(
		&User{},
		&PageContent{},
		&Event{},
		&GalleryItem{},
		&SEOSetting{},
		&ThemeSetting{},
		&ChatbotKnowledge{},
		&ContactSubmission{},
	); err != nil {
		return err
	}

	return SeedPageContent(DB)
}

// SeedPageContent 为 home/about/contact 预置单例页面内容行。
// 已存在的行不会被覆盖；后台编辑只做整体替换，从不新建。
func SeedPageContent(gdb *gorm.DB) error {
	for _, name := range PageNames {
		var count int64
		if err := gdb.Model(&PageContent{}).Where("page_name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := gdb.Create(&PageContent{PageName: name, Content: "{}"}).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
