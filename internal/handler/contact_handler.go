package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolsite/internal/service"
)

type contactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContact stores a public contact form submission.
func (a *API) SubmitContact(c *gin.Context) {
	var payload contactPayload
	if !bindJSON(c, &payload, "Name, email, and message are required") {
		return
	}

	_, err := a.contacts.Submit(service.ContactInput{
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Subject: payload.Subject,
		Message: payload.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContactFieldsMissing):
			respondError(c, http.StatusBadRequest, "Name, email, and message are required")
		case errors.Is(err, service.ErrContactEmailInvalid):
			respondError(c, http.StatusBadRequest, "Invalid email address")
		default:
			log.Printf("contact submission error: %v", err)
			respondError(c, http.StatusInternalServerError, "Failed to save submission")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thank you for contacting us. We will get back to you soon!",
	})
}

// ListContactSubmissions returns the read-only admin inbox.
func (a *API) ListContactSubmissions(c *gin.Context) {
	submissions, err := a.contacts.List(c.Query("status"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load submissions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"submissions": submissions})
}
