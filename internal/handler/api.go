package handler

import (
	"github.com/schoolsite/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	pages     *service.PageContentService
	events    *service.EventService
	galleries *service.GalleryService
	theme     *service.ThemeService
	seo       *service.SEOService
	knowledge *service.KnowledgeService
	contacts  *service.ContactService
	users     *service.UserService
	chatbot   *service.ChatbotService
	uploadDir string
	uploadURL string
}

// Options carries the non-database wiring for NewAPI.
type Options struct {
	UploadDir     string
	UploadURLPath string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(db *gorm.DB, opts Options) *API {
	return &API{
		db:        db,
		pages:     service.NewPageContentService(db),
		events:    service.NewEventService(db),
		galleries: service.NewGalleryService(db),
		theme:     service.NewThemeService(db),
		seo:       service.NewSEOService(db),
		knowledge: service.NewKnowledgeService(db),
		contacts:  service.NewContactService(db),
		users:     service.NewUserService(db),
		chatbot:   service.NewChatbotService(db, opts.OpenAIAPIKey, opts.OpenAIBaseURL, opts.OpenAIModel),
		uploadDir: opts.UploadDir,
		uploadURL: opts.UploadURLPath,
	}
}

// Chatbot exposes the chatbot service so tests can stub its HTTP client.
func (a *API) Chatbot() *service.ChatbotService {
	return a.chatbot
}

// DB exposes the underlying gorm instance for legacy paths.
func (a *API) DB() *gorm.DB {
	return a.db
}
