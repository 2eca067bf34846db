package handler

import (
	"net/http"
	"testing"

	"github.com/schoolsite/internal/db"
)

func TestLoginRejectsBadCredentials(t *testing.T) {
	gdb, cleanup := setupHandlerTestDB(t)
	defer cleanup()
	r, _ := newTestRouter(t, gdb)

	createTestUser(t, gdb, "admin@school.example", "secret", db.RoleSuperAdmin)

	w := doJSON(r, http.MethodPost, "/admin/login", map[string]string{
		"email": "admin@school.example", "password": "wrong",
	}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if decodeBody(t, w)["error"] != "Invalid email or password" {
		t.Fatalf("unexpected error body: %s", w.Body.String())
	}
}

func TestAdminRoutesRequireSession(t *testing.T) {
	gdb, cleanup := setupHandlerTestDB(t)
	defer cleanup()
	r, _ := newTestRouter(t, gdb)

	w := doJSON(r, http.MethodGet, "/admin/api/pages/home", nil, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", w.Code)
	}
	if decodeBody(t, w)["error"] != "Authentication required" {
		t.Fatalf("unexpected error body: %s", w.Body.String())
	}
}

func TestUserManagementForbiddenForEditor(t *testing.T) {
	gdb, cleanup := setupHandlerTestDB(t)
	defer cleanup()
	r, _ := newTestRouter(t, gdb)

	createTestUser(t, gdb, "editor@school.example", "pw", db.RoleEditor)
	cookies := loginAs(t, r, "editor@school.example", "pw")

	w := doJSON(r, http.MethodGet, "/admin/api/users", nil, cookies)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for editor, got %d", w.Code)
	}
	if decodeBody(t, w)["error"] != "Access denied" {
		t.Fatalf("unexpected error body: %s", w.Body.String())
	}
}

func TestUserManagementAllowedForSuperAdmin(t *testing.T) {
	gdb, cleanup := setupHandlerTestDB(t)
	defer cleanup()
	r, _ := newTestRouter(t, gdb)

	createTestUser(t, gdb, "admin@school.example", "pw", db.RoleSuperAdmin)
	cookies := loginAs(t, r, "admin@school.example", "pw")

	w := doJSON(r, http.MethodGet, "/admin/api/users", nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for super admin, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	users, ok := body["users"].([]interface{})
	if !ok || len(users) != 1 {
		t.Fatalf("expected one user in list, got %v", body)
	}
	// The password hash must never appear in the response.
	if user := users[0].(map[string]interface{}); user["password"] != nil {
		t.Fatalf("password leaked in user view: %v", user)
	}
}
