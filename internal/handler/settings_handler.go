package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolsite/internal/service"
)

// GetThemeSettings returns the site theme, defaults when unset.
func (a *API) GetThemeSettings(c *gin.Context) {
	settings, err := a.theme.GetSettings()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load theme settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": settings})
}

// SaveThemeSettings validates and upserts the singleton theme row. A
// lost first-save race surfaces as a failure for the user to retry.
func (a *API) SaveThemeSettings(c *gin.Context) {
	var payload service.ThemeSettings
	if !bindJSON(c, &payload, "Invalid theme payload") {
		return
	}

	settings, err := a.theme.Save(payload, currentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrThemeColorInvalid), errors.Is(err, service.ErrThemeOpacityInvalid):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "Failed to save theme settings")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Theme settings saved successfully!", "theme": settings})
}

type seoPayload struct {
	PagePath        string   `json:"page_path"`
	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
	OGTitle         string   `json:"og_title"`
	OGDescription   string   `json:"og_description"`
	OGImage         string   `json:"og_image"`
	Keywords        []string `json:"keywords"`
}

// GetSEOSettings returns the settings for one page path. An absent row
// answers an empty object; the frontend renders its own defaults.
func (a *API) GetSEOSettings(c *gin.Context) {
	view, err := a.seo.GetByPath(c.Query("path"))
	if err != nil {
		if errors.Is(err, service.ErrSEONotFound) {
			c.JSON(http.StatusOK, gin.H{"seo": nil})
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to load SEO settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"seo": view})
}

// ListSEOSettings returns every configured path for the admin list.
func (a *API) ListSEOSettings(c *gin.Context) {
	views, err := a.seo.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load SEO settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": views})
}

// SaveSEOSettings upserts the row for the payload's page path.
func (a *API) SaveSEOSettings(c *gin.Context) {
	var payload seoPayload
	if !bindJSON(c, &payload, "Invalid SEO payload") {
		return
	}

	view, err := a.seo.Save(service.SEOInput{
		PagePath:        payload.PagePath,
		MetaTitle:       payload.MetaTitle,
		MetaDescription: payload.MetaDescription,
		OGTitle:         payload.OGTitle,
		OGDescription:   payload.OGDescription,
		OGImage:         payload.OGImage,
		Keywords:        payload.Keywords,
	}, currentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrSEOPathRequired) {
			respondError(c, http.StatusBadRequest, "Page path is required")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to save SEO settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "SEO settings saved successfully!", "seo": view})
}
