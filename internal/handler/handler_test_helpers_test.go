package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/schoolsite/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupHandlerTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	models := []interface{}{
		&db.User{}, &db.PageContent{}, &db.Event{}, &db.GalleryItem{},
		&db.SEOSetting{}, &db.ThemeSetting{}, &db.ChatbotKnowledge{},
		&db.ContactSubmission{},
	}
	if err := gdb.AutoMigrate(models...); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	if err := db.SeedPageContent(gdb); err != nil {
		t.Fatalf("failed to seed page rows: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

// newTestRouter wires an API against gdb and exposes the routes used by
// the handler tests, with session auth matching production.
func newTestRouter(t *testing.T, gdb *gorm.DB) (*gin.Engine, *API) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	api := NewAPI(gdb, Options{OpenAIAPIKey: "sk-test"})

	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("schoolsite_session", store))

	r.GET("/api/pages/:page", api.GetPublicPage)
	r.GET("/api/events", api.ListPublicEvents)
	r.GET("/api/events/:slug", api.GetPublicEvent)
	r.POST("/api/chatbot", api.Chat)
	r.POST("/api/contact", api.SubmitContact)

	r.POST("/admin/login", api.Login)
	auth := r.Group("/admin", AuthRequired())
	{
		auth.GET("/api/pages/:page", api.GetAdminPageContent)
		auth.PUT("/api/pages/:page", api.SaveAdminPageContent)
		auth.POST("/api/events", api.CreateEvent)
		auth.PUT("/api/events/:id", api.UpdateEvent)

		users := auth.Group("/api/users", RequireUserManager())
		users.GET("", api.ListUsers)
	}

	return r, api
}

// newRouterWithoutAPIKey builds a router whose chatbot has no API key
// configured.
func newRouterWithoutAPIKey(t *testing.T, gdb *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	api := NewAPI(gdb, Options{})
	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("schoolsite_session", store))
	r.POST("/api/chatbot", api.Chat)
	return r
}

func createTestUser(t *testing.T, gdb *gorm.DB, email, password, role string) *db.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := db.User{Email: email, Password: string(hashed), Role: role}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return &user
}

// loginAs performs a real login round trip and returns the session cookies.
func loginAs(t *testing.T, r *gin.Engine, email, password string) []*http.Cookie {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", w.Code, w.Body.String())
	}
	return w.Result().Cookies()
}

func doJSON(r *gin.Engine, method, path string, payload interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return body
}

type fakeHTTPClient struct {
	handler func(*http.Request) (*http.Response, error)
}

func (f fakeHTTPClient) Do(req *http.Request) (*http.Response, error) {
	if f.handler == nil {
		return nil, errors.New("no handler configured")
	}
	return f.handler(req)
}
