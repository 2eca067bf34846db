package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolsite/internal/db"
	"github.com/schoolsite/internal/service"
)

type galleryPayload struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Category     string `json:"category"`
	DisplayOrder int    `json:"display_order"`
}

func (p galleryPayload) toInput(createdBy uint) service.GalleryInput {
	return service.GalleryInput{
		Title:        p.Title,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		ThumbnailURL: p.ThumbnailURL,
		Category:     p.Category,
		DisplayOrder: p.DisplayOrder,
		CreatedBy:    createdBy,
	}
}

// ListGalleryItems returns gallery items in visual order; a category
// query filters case-insensitively.
func (a *API) ListGalleryItems(c *gin.Context) {
	items, err := a.galleries.List(c.Query("category"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load gallery")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// ListGalleryCategories returns the fixed category display list.
func (a *API) ListGalleryCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": db.GalleryCategories})
}

// CreateGalleryItem creates a new gallery item.
func (a *API) CreateGalleryItem(c *gin.Context) {
	var payload galleryPayload
	if !bindJSON(c, &payload, "Invalid gallery payload") {
		return
	}

	item, err := a.galleries.Create(payload.toInput(currentUserID(c)))
	if err != nil {
		respondGalleryError(c, err, "Failed to create gallery item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gallery item saved", "item": item})
}

// UpdateGalleryItem updates an existing gallery item.
func (a *API) UpdateGalleryItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid gallery item id")
		return
	}

	var payload galleryPayload
	if !bindJSON(c, &payload, "Invalid gallery payload") {
		return
	}

	item, err := a.galleries.Update(id, payload.toInput(currentUserID(c)))
	if err != nil {
		respondGalleryError(c, err, "Failed to update gallery item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gallery item saved", "item": item})
}

// DeleteGalleryItem removes a gallery item.
func (a *API) DeleteGalleryItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid gallery item id")
		return
	}

	if err := a.galleries.Delete(id); err != nil {
		if errors.Is(err, service.ErrGalleryNotFound) {
			respondError(c, http.StatusNotFound, "Gallery item not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete gallery item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gallery item deleted"})
}

func respondGalleryError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrGalleryTitleRequired):
		respondError(c, http.StatusBadRequest, "Title is required")
	case errors.Is(err, service.ErrGalleryImageRequired):
		respondError(c, http.StatusBadRequest, "Image is required")
	case errors.Is(err, service.ErrGalleryNotFound):
		respondError(c, http.StatusNotFound, "Gallery item not found")
	default:
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
