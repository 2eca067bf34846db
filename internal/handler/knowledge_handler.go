package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolsite/internal/service"
)

type knowledgePayload struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	IsActive *bool  `json:"is_active"`
}

func (p knowledgePayload) toInput() service.KnowledgeInput {
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	return service.KnowledgeInput{
		Question: p.Question,
		Answer:   p.Answer,
		Category: p.Category,
		IsActive: active,
	}
}

// ListKnowledge returns all knowledge entries for the admin area.
func (a *API) ListKnowledge(c *gin.Context) {
	entries, err := a.knowledge.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load knowledge base")
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// CreateKnowledge inserts a knowledge entry.
func (a *API) CreateKnowledge(c *gin.Context) {
	var payload knowledgePayload
	if !bindJSON(c, &payload, "Invalid knowledge payload") {
		return
	}

	entry, err := a.knowledge.Create(payload.toInput())
	if err != nil {
		respondKnowledgeError(c, err, "Failed to create knowledge entry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Knowledge entry saved", "entry": entry})
}

// UpdateKnowledge modifies a knowledge entry.
func (a *API) UpdateKnowledge(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid knowledge entry id")
		return
	}

	var payload knowledgePayload
	if !bindJSON(c, &payload, "Invalid knowledge payload") {
		return
	}

	entry, err := a.knowledge.Update(id, payload.toInput())
	if err != nil {
		respondKnowledgeError(c, err, "Failed to update knowledge entry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Knowledge entry saved", "entry": entry})
}

// DeleteKnowledge removes a knowledge entry.
func (a *API) DeleteKnowledge(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid knowledge entry id")
		return
	}

	if err := a.knowledge.Delete(id); err != nil {
		if errors.Is(err, service.ErrKnowledgeNotFound) {
			respondError(c, http.StatusNotFound, "Knowledge entry not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete knowledge entry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Knowledge entry deleted"})
}

func respondKnowledgeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrKnowledgeQuestionRequired), errors.Is(err, service.ErrKnowledgeAnswerRequired):
		respondError(c, http.StatusBadRequest, "Question and answer are required")
	case errors.Is(err, service.ErrKnowledgeNotFound):
		respondError(c, http.StatusNotFound, "Knowledge entry not found")
	default:
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
