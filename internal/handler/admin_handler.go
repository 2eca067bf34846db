package handler

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/schoolsite/internal/db"
	"github.com/schoolsite/internal/service"
)

const (
	sessionKeyUserID = "user_id"
	sessionKeyRole   = "role"
)

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login 处理后台登录请求，成功后在会话中记录用户与角色。
func (a *API) Login(c *gin.Context) {
	var payload loginPayload
	if !bindJSON(c, &payload, "Email and password are required") {
		return
	}

	user, err := a.users.Authenticate(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		respondError(c, http.StatusInternalServerError, "Login failed")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionKeyUserID, user.ID)
	session.Set(sessionKeyRole, user.Role)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"full_name": user.FullName,
			"role":      user.Role,
		},
	})
}

// Logout 处理后台登出。
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the authenticated user's identity and role.
func (a *API) Me(c *gin.Context) {
	user, err := a.users.Get(currentUserID(c))
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"email":      user.Email,
			"full_name":  user.FullName,
			"avatar_url": user.AvatarURL,
			"role":       user.Role,
		},
	})
}

// Dashboard returns the admin landing counters.
func (a *API) Dashboard(c *gin.Context) {
	var eventCount, galleryCount, submissionCount, knowledgeCount int64
	a.db.Model(&db.Event{}).Count(&eventCount)
	a.db.Model(&db.GalleryItem{}).Count(&galleryCount)
	a.db.Model(&db.ContactSubmission{}).Count(&submissionCount)
	a.db.Model(&db.ChatbotKnowledge{}).Count(&knowledgeCount)

	c.JSON(http.StatusOK, gin.H{
		"events":              eventCount,
		"gallery_items":       galleryCount,
		"contact_submissions": submissionCount,
		"knowledge_entries":   knowledgeCount,
	})
}

// AuthRequired 是后台接口的认证中间件，未登录一律返回 401。
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(sessionKeyUserID)
		role, _ := session.Get(sessionKeyRole).(string)
		if userID == nil || !db.RoleCanEditContent(role) {
			respondError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireUserManager 限定用户管理接口，权限判断统一走 db.RoleCanManageUsers。
func RequireUserManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !db.RoleCanManageUsers(currentUserRole(c)) {
			respondError(c, http.StatusForbidden, "Access denied")
			c.Abort()
			return
		}
		c.Next()
	}
}

func currentUserID(c *gin.Context) uint {
	session := sessions.Default(c)
	if id, ok := session.Get(sessionKeyUserID).(uint); ok {
		return id
	}
	return 0
}

func currentUserRole(c *gin.Context) string {
	session := sessions.Default(c)
	if role, ok := session.Get(sessionKeyRole).(string); ok {
		return role
	}
	return ""
}
