package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/schoolsite/internal/handler"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, sessionSecret, uploadURLPath, uploadDir string) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("schoolsite_session", store))

	// 静态文件服务（上传的图片）
	r.Static(uploadURLPath, uploadDir)

	r.GET("/ping", handler.Ping)

	// 公开站点接口
	public := r.Group("/api")
	{
		public.GET("/pages/:page", api.GetPublicPage)
		public.GET("/events", api.ListPublicEvents)
		public.GET("/events/:slug", api.GetPublicEvent)
		public.GET("/gallery", api.ListGalleryItems)
		public.GET("/gallery/categories", api.ListGalleryCategories)
		public.GET("/theme", api.GetThemeSettings)
		public.GET("/seo", api.GetSEOSettings)
		public.POST("/chatbot", api.Chat)
		public.POST("/contact", api.SubmitContact)
	}

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)

		// 需要认证的后台路由
		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/me", api.Me)

			adminAPI := auth.Group("/api")
			{
				adminAPI.GET("/dashboard", api.Dashboard)

				adminAPI.GET("/pages/:page", api.GetAdminPageContent)
				adminAPI.PUT("/pages/:page", api.SaveAdminPageContent)

				adminAPI.GET("/events", api.ListAdminEvents)
				adminAPI.GET("/events/slug-suggestion", api.SuggestEventSlug)
				adminAPI.GET("/events/:id", api.GetAdminEvent)
				adminAPI.POST("/events", api.CreateEvent)
				adminAPI.PUT("/events/:id", api.UpdateEvent)
				adminAPI.DELETE("/events/:id", api.DeleteEvent)

				adminAPI.GET("/gallery", api.ListGalleryItems)
				adminAPI.POST("/gallery", api.CreateGalleryItem)
				adminAPI.PUT("/gallery/:id", api.UpdateGalleryItem)
				adminAPI.DELETE("/gallery/:id", api.DeleteGalleryItem)

				adminAPI.GET("/theme", api.GetThemeSettings)
				adminAPI.PUT("/theme", api.SaveThemeSettings)

				adminAPI.GET("/seo", api.ListSEOSettings)
				adminAPI.PUT("/seo", api.SaveSEOSettings)

				adminAPI.GET("/knowledge", api.ListKnowledge)
				adminAPI.POST("/knowledge", api.CreateKnowledge)
				adminAPI.PUT("/knowledge/:id", api.UpdateKnowledge)
				adminAPI.DELETE("/knowledge/:id", api.DeleteKnowledge)

				adminAPI.GET("/contacts", api.ListContactSubmissions)

				adminAPI.POST("/upload", api.UploadImage)

				// 用户管理仅限超级管理员
				users := adminAPI.Group("/users")
				users.Use(handler.RequireUserManager())
				{
					users.GET("", api.ListUsers)
					users.POST("", api.CreateUser)
					users.PUT("/:id/role", api.UpdateUserRole)
				}
			}
		}
	}

	return r
}
