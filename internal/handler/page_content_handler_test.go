package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/schoolsite/internal/db"
)

func TestGetAdminPageContentDefaults(t *testing.T) {
	gdb, cleanup := setupHandlerTestDB(t)
	defer cleanup()
	r, _ := newTestRouter(t, gdb)

	createTestUser(t, gdb, "editor@school.example", "pw", db.RoleEditor)
	cookies := loginAs(t, r, "editor@school.example", "pw")

	w := doJSON(r, http.MethodGet, "/admin/api/pages/home", nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["state"] != "ready" {
		t.Fatalf("expected ready state, got %v", body["state"])
	}
	content, ok := body["content"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected content object, got %v", body["content"])
	}
	if _, ok := content["highlights"].([]interface{}); !ok {
		t.Fatalf("expected highlights array in default document, got %v", content["highlights"])
	}
}

func TestSaveAdminPageContentRoundTrip(t *testing.T) {
	gdb, cleanup := setupHandlerTestDB(t)
	defer cleanup()
	r, _ := newTestRouter(t, gdb)

	createTestUser(t, gdb, "editor@school.example", "pw", db.RoleEditor)
	cookies := loginAs(t, r, "editor@school.example", "pw")

	payload := map[string]interface{}{
		"hero_title":      "Welcome",
		"welcome_message": "Hello families",
		"highlights": []map[string]string{
			{"title": "Faculty", "description": "Experienced teachers"},
		},
	}
	w := doJSON(r, http.MethodPut, "/admin/api/pages/home", payload, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["message"] != "Content saved successfully!" {
		t.Fatalf("unexpected message %v", body["message"])
	}
	if body["state"] != "save_success" {
		t.Fatalf("expected save_success, got %v", body["state"])
	}

	// The public endpoint now serves the saved document.
	w = doJSON(r, http.MethodGet, "/api/pages/home", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	public := decodeBody(t, w)
	content := public["content"].(map[string]interface{})
	if content["hero_title"] != "Welcome" {
		t.Fatalf("expected saved title on public page, got %v", content["hero_title"])
	}
}

func TestSaveAboutEmptyFacultyStaysArray(t *testing.T) {
	gdb, cleanup := setupHandlerTestDB(t)
	defer cleanup()
	r, _ := newTestRouter(t, gdb)

	createTestUser(t, gdb, "editor@school.example", "pw", db.RoleEditor)
	cookies := loginAs(t, r, "editor@school.example", "pw")

	payload := map[string]interface{}{
		"history": "Founded in 1952",
		"faculty": []interface{}{},
	}
	w := doJSON(r, http.MethodPut, "/admin/api/pages/about", payload, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var row db.PageContent
	if err := gdb.Where("page_name = ?", db.PageNameAbout).First(&row).Error; err != nil {
		t.Fatalf("failed to read row: %v", err)
	}
	if !strings.Contains(row.Content, `"faculty":[]`) {
		t.Fatalf("expected faculty stored as empty array, got %s", row.Content)
	}
}

func TestPageContentUnknownPage(t *testing.T) {
	gdb, cleanup := setupHandlerTestDB(t)
	defer cleanup()
	r, _ := newTestRouter(t, gdb)

	createTestUser(t, gdb, "editor@school.example", "pw", db.RoleEditor)
	cookies := loginAs(t, r, "editor@school.example", "pw")

	w := doJSON(r, http.MethodGet, "/admin/api/pages/news", nil, cookies)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown page, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/api/pages/news", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown public page, got %d", w.Code)
	}
}
