package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolsite/internal/service"
)

type userView struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
	Role      string `json:"role"`
}

// ListUsers returns every admin-area account; the password hash never
// leaves this handler.
func (a *API) ListUsers(c *gin.Context) {
	users, err := a.users.List(currentUserRole(c))
	if err != nil {
		respondUserError(c, err, "Failed to load users")
		return
	}

	views := make([]userView, 0, len(users))
	for _, user := range users {
		views = append(views, userView{
			ID:        user.ID,
			Email:     user.Email,
			FullName:  user.FullName,
			AvatarURL: user.AvatarURL,
			Role:      user.Role,
		})
	}
	c.JSON(http.StatusOK, gin.H{"users": views})
}

type createUserPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// CreateUser adds an admin-area account.
func (a *API) CreateUser(c *gin.Context) {
	var payload createUserPayload
	if !bindJSON(c, &payload, "Email and password are required") {
		return
	}

	user, err := a.users.Create(currentUserRole(c), payload.Email, payload.Password, payload.FullName, payload.Role)
	if err != nil {
		respondUserError(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userView{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}})
}

type updateRolePayload struct {
	Role string `json:"role"`
}

// UpdateUserRole changes another account's role.
func (a *API) UpdateUserRole(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	var payload updateRolePayload
	if !bindJSON(c, &payload, "Role is required") {
		return
	}

	user, err := a.users.UpdateRole(currentUserRole(c), id, payload.Role)
	if err != nil {
		respondUserError(c, err, "Failed to update role")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userView{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}})
}

func respondUserError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, "Access denied")
	case errors.Is(err, service.ErrRoleInvalid):
		respondError(c, http.StatusBadRequest, "Role is invalid")
	case errors.Is(err, service.ErrUserEmailRequired), errors.Is(err, service.ErrInvalidCredentials):
		respondError(c, http.StatusBadRequest, "Email and password are required")
	case errors.Is(err, service.ErrUserEmailTaken):
		respondError(c, http.StatusConflict, "A user with this email already exists")
	case errors.Is(err, service.ErrUserNotFound):
		respondError(c, http.StatusNotFound, "User not found")
	default:
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
