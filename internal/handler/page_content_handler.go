package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolsite/internal/db"
	"github.com/schoolsite/internal/service"
)

// GetAdminPageContent returns the editable document for one page. The
// editor always reaches Ready: a failed fetch installs the default
// document and surfaces a warning instead of blocking the form.
func (a *API) GetAdminPageContent(c *gin.Context) {
	switch c.Param("page") {
	case db.PageNameHome:
		editor := service.NewDocumentEditor[service.HomeContent]()
		editor.Load(a.pages.GetHome, service.DefaultHomeContent())
		respondEditorDocument(c, editor)
	case db.PageNameAbout:
		editor := service.NewDocumentEditor[service.AboutContent]()
		editor.Load(a.pages.GetAbout, service.DefaultAboutContent())
		respondEditorDocument(c, editor)
	case db.PageNameContact:
		editor := service.NewDocumentEditor[service.ContactContent]()
		editor.Load(a.pages.GetContact, service.DefaultContactContent())
		respondEditorDocument(c, editor)
	default:
		respondError(c, http.StatusNotFound, "Unknown page")
	}
}

// SaveAdminPageContent replaces the whole document for one page. The
// payload is the full document; unrelated fields from a concurrent
// editor are overwritten (last write wins, documented limitation).
func (a *API) SaveAdminPageContent(c *gin.Context) {
	userID := currentUserID(c)

	switch c.Param("page") {
	case db.PageNameHome:
		var payload service.HomeContent
		if !bindJSON(c, &payload, "Invalid page content payload") {
			return
		}
		saveDocument(c, a.pages.GetHome, service.DefaultHomeContent(), payload, func(doc service.HomeContent) error {
			return a.pages.SaveHome(doc, userID)
		})
	case db.PageNameAbout:
		var payload service.AboutContent
		if !bindJSON(c, &payload, "Invalid page content payload") {
			return
		}
		saveDocument(c, a.pages.GetAbout, service.DefaultAboutContent(), payload, func(doc service.AboutContent) error {
			return a.pages.SaveAbout(doc, userID)
		})
	case db.PageNameContact:
		var payload service.ContactContent
		if !bindJSON(c, &payload, "Invalid page content payload") {
			return
		}
		saveDocument(c, a.pages.GetContact, service.DefaultContactContent(), payload, func(doc service.ContactContent) error {
			return a.pages.SaveContact(doc, userID)
		})
	default:
		respondError(c, http.StatusNotFound, "Unknown page")
	}
}

func respondEditorDocument[T any](c *gin.Context, editor *service.DocumentEditor[T]) {
	body := gin.H{
		"content": editor.Document(),
		"state":   editor.State().String(),
	}
	if warning := editor.Warning(); warning != "" {
		body["warning"] = warning
	}
	c.JSON(http.StatusOK, body)
}

// saveDocument drives one editing round trip through the document
// editor: load, install the submitted document, save, answer from the
// resulting state.
func saveDocument[T any](c *gin.Context, fetch func() (T, error), fallback T, payload T, persist func(T) error) {
	editor := service.NewDocumentEditor[T]()
	editor.Load(fetch, fallback)
	editor.SetDocument(payload)

	if err := editor.Save(persist); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to save content")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Content saved successfully!",
		"state":   editor.State().String(),
		"content": editor.Document(),
	})
}
