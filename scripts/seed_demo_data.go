package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/schoolsite/internal/config"
	"github.com/schoolsite/internal/db"
	"github.com/schoolsite/internal/service"
	"golang.org/x/crypto/bcrypt"
)

// 演示数据生成器
func main() {
	// 初始化数据库
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	fmt.Println("开始生成演示数据...")

	createDemoUsers()
	seedPageDocuments()
	createDemoEvents()
	createDemoGallery()
	createDemoKnowledge()

	fmt.Println("演示数据生成完成！")
	fmt.Println("管理员: admin@school.example (密码: admin123)")
}

// 创建演示用户
func createDemoUsers() {
	var count int64
	db.DB.Model(&db.User{}).Count(&count)
	if count > 0 {
		fmt.Println("用户已存在，跳过创建")
		return
	}

	hashed, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	db.DB.Create(&db.User{
		Email:    "admin@school.example",
		Password: string(hashed),
		FullName: "Site Administrator",
		Role:     db.RoleSuperAdmin,
	})

	hashed2, _ := bcrypt.GenerateFromPassword([]byte("editor123"), bcrypt.DefaultCost)
	db.DB.Create(&db.User{
		Email:    "editor@school.example",
		Password: string(hashed2),
		FullName: "Content Editor",
		Role:     db.RoleEditor,
	})
}

// 填充页面内容文档
func seedPageDocuments() {
	home := service.DefaultHomeContent()
	home.HeroTitle = "Welcome to Changaramkulam U P School"
	home.HeroSubtitle = "Nurturing young minds since 1952"
	home.WelcomeMessage = "Our school provides quality education in a caring environment."
	home.Highlights = []service.Highlight{
		{Title: "Experienced Faculty", Description: "Dedicated teachers with decades of combined experience.", Icon: "academic-cap"},
		{Title: "Modern Campus", Description: "Well equipped classrooms, library, and playground.", Icon: "building"},
		{Title: "Holistic Growth", Description: "Arts, sports, and clubs alongside academics.", Icon: "sparkles"},
	}

	about := service.DefaultAboutContent()
	about.History = "Founded in 1952, the school has served the community for generations."
	about.Mission = "To provide inclusive, high quality primary education."
	about.Vision = "Every child confident, curious, and kind."
	about.PrincipalMessage = "We welcome every family to be part of our journey."
	about.Faculty = []service.FacultyMember{
		{Name: "Anita Menon", Position: "Principal", Qualification: "M.Ed"},
		{Name: "Ravi Kumar", Position: "Senior Teacher", Qualification: "B.Ed"},
	}

	contact := service.DefaultContactContent()
	contact.Address = "Changaramkulam, Malappuram District, Kerala"
	contact.Phone = "+91 494 000 0000"
	contact.Email = "office@school.example"
	contact.MapCoordinates = service.MapCoordinates{Lat: 10.8505, Lng: 76.2711}

	writePage(db.PageNameHome, home)
	writePage(db.PageNameAbout, about)
	writePage(db.PageNameContact, contact)
}

func writePage(page string, doc interface{}) {
	raw, err := json.Marshal(doc)
	if err != nil {
		log.Fatalf("序列化 %s 页面失败: %v", page, err)
	}
	db.DB.Model(&db.PageContent{}).
		Where("page_name = ?", page).
		Update("content", string(raw))
}

// 创建演示活动
func createDemoEvents() {
	var count int64
	db.DB.Model(&db.Event{}).Count(&count)
	if count > 0 {
		fmt.Println("活动已存在，跳过创建")
		return
	}

	events := []db.Event{
		{
			Title:       "Annual Sports Day",
			Slug:        "annual-sports-day",
			Description: "A full day of track and field events for all classes.",
			Content:     "Join us for races, games, and the march past.\n\n**All parents are welcome.**",
			EventDate:   "2026-01-15",
			StartTime:   "09:00",
			EndTime:     "16:00",
			Location:    "School Playground",
			Status:      db.EventStatusPublished,
		},
		{
			Title:       "Science Exhibition",
			Slug:        "science-exhibition",
			Description: "Student projects on display in the main hall.",
			EventDate:   "2026-02-20",
			StartTime:   "10:00",
			EndTime:     "15:00",
			Location:    "Main Hall",
			Status:      db.EventStatusPublished,
		},
		{
			Title:     "Staff Planning Meeting",
			Slug:      "staff-planning-meeting",
			EventDate: "2026-03-01",
			Status:    db.EventStatusDraft,
		},
	}
	for i := range events {
		db.DB.Create(&events[i])
	}
}

// 创建演示相册
func createDemoGallery() {
	var count int64
	db.DB.Model(&db.GalleryItem{}).Count(&count)
	if count > 0 {
		fmt.Println("相册已存在，跳过创建")
		return
	}

	items := []db.GalleryItem{
		{Title: "Relay Final", Category: "Sports", ImageURL: "/static/uploads/gallery/relay.jpg", DisplayOrder: 1},
		{Title: "Art Class", Category: "Academics", ImageURL: "/static/uploads/gallery/art.jpg", DisplayOrder: 2},
		{Title: "School Building", Category: "Campus", ImageURL: "/static/uploads/gallery/building.jpg", DisplayOrder: 3},
		{Title: "Onam Celebration", Category: "Celebrations", ImageURL: "/static/uploads/gallery/onam.jpg", DisplayOrder: 4},
	}
	for i := range items {
		db.DB.Create(&items[i])
	}
}

// 创建演示知识库
func createDemoKnowledge() {
	var count int64
	db.DB.Model(&db.ChatbotKnowledge{}).Count(&count)
	if count > 0 {
		fmt.Println("知识库已存在，跳过创建")
		return
	}

	entries := []db.ChatbotKnowledge{
		{Question: "What are the school hours?", Answer: "Classes run from 9am to 4pm, Monday to Friday.", Category: "General", IsActive: true},
		{Question: "How do I apply for admission?", Answer: "Visit the school office with the child's birth certificate during office hours.", Category: "Admissions", IsActive: true},
		{Question: "Is there a school bus?", Answer: "Yes, bus routes cover the surrounding villages. Contact the office for stops.", Category: "Transport", IsActive: true},
	}
	for i := range entries {
		db.DB.Create(&entries[i])
	}
}
