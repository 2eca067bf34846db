package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/schoolsite/internal/config"
	"github.com/schoolsite/internal/db"
	"github.com/schoolsite/internal/handler"
	"github.com/schoolsite/internal/router"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	if cfg.SuperAdminEmail != "" && cfg.SuperAdminPassword != "" {
		if err := db.EnsureSuperAdmin(cfg.SuperAdminEmail, cfg.SuperAdminPassword); err != nil {
			log.Fatalf("failed to ensure super admin: %v", err)
		}
	}

	api := handler.NewAPI(db.DB, handler.Options{
		UploadDir:     cfg.UploadDir,
		UploadURLPath: cfg.UploadURLPath,
		OpenAIAPIKey:  cfg.OpenAIAPIKey,
		OpenAIBaseURL: cfg.OpenAIBaseURL,
		OpenAIModel:   cfg.OpenAIModel,
	})

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(api, cfg.SessionSecret, cfg.UploadURLPath, cfg.UploadDir)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
