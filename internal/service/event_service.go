package service

import (
	"errors"
	"strings"

	"github.com/schoolsite/internal/db"
	"gorm.io/gorm"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrEventTitleRequired = errors.New("event title is required")
	ErrEventSlugRequired  = errors.New("event slug is required")
	ErrEventSlugTaken     = errors.New("this slug is already in use")
	ErrEventStatusInvalid = errors.New("event status is invalid")
)

// EventService wraps event related database operations. Slug uniqueness
// is enforced by rejection: a colliding save fails with ErrEventSlugTaken
// and leaves the store unchanged, it is never silently auto-renamed.
type EventService struct {
	db *gorm.DB
}

// EventFilter describes filters for listing events.
type EventFilter struct {
	Search  string
	Status  string
	Page    int
	PerPage int
}

// EventListResult aggregates paginated event results.
type EventListResult struct {
	Events     []db.Event
	Total      int64
	TotalPages int
	Page       int
	PerPage    int
}

// EventInput represents fields accepted when creating or updating an event.
type EventInput struct {
	Title         string
	Slug          string
	Description   string
	Content       string
	EventDate     string
	StartTime     string
	EndTime       string
	Location      string
	FeaturedImage string
	Status        string
	CreatedBy     uint
}

// NewEventService creates an EventService instance.
func NewEventService(gdb *gorm.DB) *EventService {
	return &EventService{db: gdb}
}

// List returns events matching the filter, newest event date first.
func (s *EventService) List(filter EventFilter) (EventListResult, error) {
	result := EventListResult{
		Page:    normalizePage(filter.Page),
		PerPage: normalizePerPage(filter.PerPage, 10),
	}

	query := s.db.Model(&db.Event{})
	if status := strings.TrimSpace(filter.Status); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	if err := query.Count(&result.Total).Error; err != nil {
		return result, err
	}

	result.TotalPages = calculateTotalPages(result.Total, result.PerPage)
	offset := (result.Page - 1) * result.PerPage

	if err := query.Order("event_date desc").Order("created_at desc").
		Limit(result.PerPage).
		Offset(offset).
		Find(&result.Events).Error; err != nil {
		return result, err
	}

	return result, nil
}

// ListPublished returns published events for the public site.
func (s *EventService) ListPublished(page, perPage int) (EventListResult, error) {
	return s.List(EventFilter{
		Status:  db.EventStatusPublished,
		Page:    page,
		PerPage: perPage,
	})
}

// Get fetches an event by id.
func (s *EventService) Get(id uint) (*db.Event, error) {
	var event db.Event
	if err := s.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

// GetPublishedBySlug fetches a published event by slug for public pages.
func (s *EventService) GetPublishedBySlug(slug string) (*db.Event, error) {
	var event db.Event
	err := s.db.Where("slug = ? AND status = ?", strings.TrimSpace(slug), db.EventStatusPublished).
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

// Create inserts a new event. A blank slug is derived from the title;
// the slug must not collide with any existing event.
func (s *EventService) Create(input EventInput) (*db.Event, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrEventTitleRequired
	}

	slug := GenerateSlug(input.Slug)
	if slug == "" {
		slug = GenerateSlug(title)
	}
	if slug == "" {
		return nil, ErrEventSlugRequired
	}

	status, err := normalizeEventStatus(input.Status)
	if err != nil {
		return nil, err
	}

	taken, err := s.slugInUse(slug, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEventSlugTaken
	}

	event := db.Event{
		Title:         title,
		Slug:          slug,
		Description:   strings.TrimSpace(input.Description),
		Content:       input.Content,
		EventDate:     strings.TrimSpace(input.EventDate),
		StartTime:     strings.TrimSpace(input.StartTime),
		EndTime:       strings.TrimSpace(input.EndTime),
		Location:      strings.TrimSpace(input.Location),
		FeaturedImage: strings.TrimSpace(input.FeaturedImage),
		Status:        status,
		CreatedBy:     input.CreatedBy,
	}

	if err := s.db.Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// Update applies a full replace to an existing event. The slug is
// re-derived from the new title whenever the submitted slug was not
// hand-edited away from the value derived from the stored title; a
// hand-edited slug is kept (normalized). The heuristic cannot tell a
// manual edit from a title edited back to a matching value; that
// ambiguity is inherited from the source behavior on purpose.
func (s *EventService) Update(id uint, input EventInput) (*db.Event, error) {
	var event db.Event
	if err := s.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrEventTitleRequired
	}

	submitted := GenerateSlug(input.Slug)
	slug := submitted
	if submitted == "" || submitted == GenerateSlug(event.Title) {
		slug = GenerateSlug(title)
	}
	if slug == "" {
		return nil, ErrEventSlugRequired
	}

	status, err := normalizeEventStatus(input.Status)
	if err != nil {
		return nil, err
	}

	taken, err := s.slugInUse(slug, event.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEventSlugTaken
	}

	event.Title = title
	event.Slug = slug
	event.Description = strings.TrimSpace(input.Description)
	event.Content = input.Content
	event.EventDate = strings.TrimSpace(input.EventDate)
	event.StartTime = strings.TrimSpace(input.StartTime)
	event.EndTime = strings.TrimSpace(input.EndTime)
	event.Location = strings.TrimSpace(input.Location)
	event.FeaturedImage = strings.TrimSpace(input.FeaturedImage)
	event.Status = status

	if err := s.db.Save(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// Delete removes an event.
func (s *EventService) Delete(id uint) error {
	var event db.Event
	if err := s.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	return s.db.Delete(&event).Error
}

// SlugSuggestion derives a slug from title and resolves collisions with
// a numeric suffix against the freshly fetched slug set. Used only for
// the admin form's initial derivation; saves still enforce uniqueness by
// rejection.
func (s *EventService) SlugSuggestion(title string) (string, error) {
	candidate := GenerateSlug(title)
	if candidate == "" {
		return "", ErrEventSlugRequired
	}

	var existing []string
	if err := s.db.Model(&db.Event{}).Pluck("slug", &existing).Error; err != nil {
		return "", err
	}
	return EnsureUniqueSlug(candidate, existing), nil
}

// slugInUse performs the targeted uniqueness lookup, excluding the
// record's own id when editing.
func (s *EventService) slugInUse(slug string, excludeID uint) (bool, error) {
	query := s.db.Model(&db.Event{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func normalizeEventStatus(status string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(status))
	if normalized == "" {
		return db.EventStatusDraft, nil
	}
	switch normalized {
	case db.EventStatusDraft, db.EventStatusPublished, db.EventStatusArchived:
		return normalized, nil
	}
	return "", ErrEventStatusInvalid
}
