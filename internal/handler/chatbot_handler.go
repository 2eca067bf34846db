package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolsite/internal/service"
)

type chatPayload struct {
	Message string `json:"message"`
}

// Chat answers a visitor message grounded on the knowledge base.
// Upstream failures never leak configuration detail: an authorization
// failure and a generic failure map to distinct fixed messages while
// the original error only goes to the log.
func (a *API) Chat(c *gin.Context) {
	var payload chatPayload
	if !bindJSON(c, &payload, "Message is required") {
		return
	}

	reply, err := a.chatbot.Answer(c.Request.Context(), payload.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrChatMessageRequired):
			respondError(c, http.StatusBadRequest, "Message is required")
		case errors.Is(err, service.ErrChatbotNotConfigured):
			respondError(c, http.StatusInternalServerError, "Chatbot is not configured. Please contact the administrator.")
		case errors.Is(err, service.ErrAIUnauthorized):
			log.Printf("chatbot authorization failure: %v", err)
			respondError(c, http.StatusInternalServerError, "Invalid API key. Please contact the administrator.")
		default:
			log.Printf("chatbot error: %v", err)
			respondError(c, http.StatusInternalServerError, "Failed to process request. Please try again.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
