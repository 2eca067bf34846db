package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolsite/internal/service"
)

type eventPayload struct {
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Description   string `json:"description"`
	Content       string `json:"content"`
	EventDate     string `json:"event_date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Location      string `json:"location"`
	FeaturedImage string `json:"featured_image"`
	Status        string `json:"status"`
}

func (p eventPayload) toInput(createdBy uint) service.EventInput {
	return service.EventInput{
		Title:         p.Title,
		Slug:          p.Slug,
		Description:   p.Description,
		Content:       p.Content,
		EventDate:     p.EventDate,
		StartTime:     p.StartTime,
		EndTime:       p.EndTime,
		Location:      p.Location,
		FeaturedImage: p.FeaturedImage,
		Status:        p.Status,
		CreatedBy:     createdBy,
	}
}

// ListAdminEvents returns events for the admin list with filters.
func (a *API) ListAdminEvents(c *gin.Context) {
	result, err := a.events.List(service.EventFilter{
		Search:  c.Query("search"),
		Status:  c.Query("status"),
		Page:    parsePositiveInt(c.DefaultQuery("page", "1"), 1),
		PerPage: parsePositiveInt(c.DefaultQuery("per_page", "10"), 10),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load events")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events":      result.Events,
		"total":       result.Total,
		"page":        result.Page,
		"total_pages": result.TotalPages,
	})
}

// GetAdminEvent returns a single event for the edit form.
func (a *API) GetAdminEvent(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	event, err := a.events.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			respondError(c, http.StatusNotFound, "Event not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to load event")
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

// CreateEvent creates a new event from the admin form.
func (a *API) CreateEvent(c *gin.Context) {
	var payload eventPayload
	if !bindJSON(c, &payload, "Invalid event payload") {
		return
	}

	event, err := a.events.Create(payload.toInput(currentUserID(c)))
	if err != nil {
		respondEventError(c, err, "Failed to create event")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event saved successfully!", "event": event})
}

// UpdateEvent applies a full replace to an existing event.
func (a *API) UpdateEvent(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	var payload eventPayload
	if !bindJSON(c, &payload, "Invalid event payload") {
		return
	}

	event, err := a.events.Update(id, payload.toInput(currentUserID(c)))
	if err != nil {
		respondEventError(c, err, "Failed to update event")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event saved successfully!", "event": event})
}

// DeleteEvent removes an event.
func (a *API) DeleteEvent(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	if err := a.events.Delete(id); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			respondError(c, http.StatusNotFound, "Event not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete event")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

// SuggestEventSlug derives a collision-free slug for the admin form.
func (a *API) SuggestEventSlug(c *gin.Context) {
	slug, err := a.events.SlugSuggestion(c.Query("title"))
	if err != nil {
		if errors.Is(err, service.ErrEventSlugRequired) {
			respondError(c, http.StatusBadRequest, "Title is required")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to derive slug")
		return
	}

	c.JSON(http.StatusOK, gin.H{"slug": slug})
}

// ListPublicEvents returns published events for the public site.
func (a *API) ListPublicEvents(c *gin.Context) {
	result, err := a.events.ListPublished(
		parsePositiveInt(c.DefaultQuery("page", "1"), 1),
		parsePositiveInt(c.DefaultQuery("per_page", "9"), 9),
	)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load events")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events":      result.Events,
		"total":       result.Total,
		"page":        result.Page,
		"total_pages": result.TotalPages,
	})
}

// GetPublicEvent returns one published event by slug, with the rich
// text content projected to sanitized HTML.
func (a *API) GetPublicEvent(c *gin.Context) {
	event, err := a.events.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			respondError(c, http.StatusNotFound, "Event not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to load event")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"event":        event,
		"content_html": renderRichText(event.Content),
	})
}

func respondEventError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrEventTitleRequired):
		respondError(c, http.StatusBadRequest, "Title and slug are required")
	case errors.Is(err, service.ErrEventSlugRequired):
		respondError(c, http.StatusBadRequest, "Title and slug are required")
	case errors.Is(err, service.ErrEventStatusInvalid):
		respondError(c, http.StatusBadRequest, "Event status is invalid")
	case errors.Is(err, service.ErrEventSlugTaken):
		respondError(c, http.StatusConflict, "This slug is already in use. Please choose another.")
	case errors.Is(err, service.ErrEventNotFound):
		respondError(c, http.StatusNotFound, "Event not found")
	default:
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
