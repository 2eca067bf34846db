package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/schoolsite/internal/db"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// renderRichText converts stored markdown into sanitized HTML for the
// public JSON responses. A conversion failure degrades to the raw text
// run through the sanitizer so the page still renders something.
func renderRichText(content string) string {
	if content == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return string(sanitizer.SanitizeBytes([]byte(content)))
	}
	return string(sanitizer.SanitizeBytes(buf.Bytes()))
}

// GetPublicPage serves the typed content document for a public page.
// Missing or unreadable rows answer the default document so the site
// never renders an empty shell.
func (a *API) GetPublicPage(c *gin.Context) {
	page := c.Param("page")
	if !db.IsValidPageName(page) {
		respondError(c, http.StatusNotFound, "Unknown page")
		return
	}

	switch page {
	case db.PageNameHome:
		content, _ := a.pages.GetHome()
		c.JSON(http.StatusOK, gin.H{"page": page, "content": content})
	case db.PageNameAbout:
		content, _ := a.pages.GetAbout()
		c.JSON(http.StatusOK, gin.H{
			"page":    page,
			"content": content,
			"rendered": gin.H{
				"history":           renderRichText(content.History),
				"mission":           renderRichText(content.Mission),
				"vision":            renderRichText(content.Vision),
				"principal_message": renderRichText(content.PrincipalMessage),
			},
		})
	case db.PageNameContact:
		content, _ := a.pages.GetContact()
		c.JSON(http.StatusOK, gin.H{"page": page, "content": content})
	}
}

// Ping is a lightweight health probe.
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
