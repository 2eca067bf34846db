package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/schoolsite/internal/db"
	"gorm.io/gorm"
)

var (
	ErrChatMessageRequired  = errors.New("message is required")
	ErrChatbotNotConfigured = errors.New("chatbot is not configured")
)

const (
	chatbotMaxTokens = 500
	// maxKnowledgeContextRunes bounds the assembled knowledge block so a
	// large knowledge base cannot blow the model context. Whole Q/A
	// entries are dropped once the budget is spent, which drops
	// later-seen categories first.
	maxKnowledgeContextRunes = 6000

	chatbotFallbackReply     = "Sorry, I could not generate a response."
	defaultKnowledgeCategory = "General"
)

const chatbotSystemPromptFormat = `You are a helpful assistant for Changaramkulam U P School in Kerala, India.

Your role:
- Answer questions about the school based on the knowledge base provided
- Be friendly, professional, and concise
- If you don't know the answer, politely say so and suggest contacting the school directly
- Provide contact information when relevant
- Use simple, clear language suitable for parents and students

Knowledge Base:
%s

Guidelines:
- Keep responses under 150 words
- Be warm and welcoming
- If asked about admissions, fees, or specific dates not in the knowledge base, direct them to contact the school
- Never make up information - only use what's provided in the knowledge base`

// ChatbotService answers visitor questions grounded on the active
// knowledge base. Stateless per call: no conversation history is kept
// server-side, each call re-sends only the current message.
type ChatbotService struct {
	db     *gorm.DB
	client *aiChatClient
}

// NewChatbotService constructs a ChatbotService backed by an
// OpenAI-compatible completion API.
func NewChatbotService(gdb *gorm.DB, apiKey, baseURL, model string) *ChatbotService {
	return &ChatbotService{
		db:     gdb,
		client: newAIChatClient(apiKey, baseURL, model),
	}
}

// SetHTTPClient replaces the outbound HTTP client, for tests.
func (s *ChatbotService) SetHTTPClient(client httpDoer) {
	s.client.SetHTTPClient(client)
}

// SetBaseURL overrides the completion API base address.
func (s *ChatbotService) SetBaseURL(base string) {
	s.client.SetBaseURL(base)
}

// Answer validates the visitor message, assembles the grounded prompt
// and returns the model reply or a fixed fallback. Invalid input fails
// before any upstream call is made.
func (s *ChatbotService) Answer(ctx context.Context, message string) (string, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return "", ErrChatMessageRequired
	}

	entries, err := s.activeKnowledge()
	if err != nil {
		return "", fmt.Errorf("load knowledge base: %w", err)
	}

	systemPrompt := fmt.Sprintf(chatbotSystemPromptFormat, buildKnowledgeContext(entries))
	logAIExchange("CHATBOT", "prompt", trimmed)

	result, err := s.client.Call(ctx, aiChatRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   trimmed,
		MaxTokens:    chatbotMaxTokens,
	})
	if err != nil {
		if errors.Is(err, ErrAIAPIKeyMissing) {
			return "", ErrChatbotNotConfigured
		}
		return "", err
	}

	reply := strings.TrimSpace(result.Content)
	if reply == "" {
		reply = chatbotFallbackReply
	}
	logAIExchange("CHATBOT", "response", reply)

	return reply, nil
}

func (s *ChatbotService) activeKnowledge() ([]db.ChatbotKnowledge, error) {
	var entries []db.ChatbotKnowledge
	if err := s.db.Where("is_active = ?", true).Order("id asc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// buildKnowledgeContext groups active entries by category (default
// "General"), emitting an upper-cased header per category followed by
// Q/A pairs in fetch order, capped at maxKnowledgeContextRunes.
func buildKnowledgeContext(entries []db.ChatbotKnowledge) string {
	var b strings.Builder
	b.WriteString("Here is information about Changaramkulam U P School:\n\n")

	if len(entries) == 0 {
		b.WriteString("Contact information and basic details about the school are available on the Contact page.\n")
		return b.String()
	}

	grouped := make(map[string][]db.ChatbotKnowledge)
	var order []string
	for _, entry := range entries {
		category := strings.TrimSpace(entry.Category)
		if category == "" {
			category = defaultKnowledgeCategory
		}
		if _, seen := grouped[category]; !seen {
			order = append(order, category)
		}
		grouped[category] = append(grouped[category], entry)
	}

	budget := maxKnowledgeContextRunes - utf8.RuneCountInString(b.String())
	for _, category := range order {
		header := fmt.Sprintf("\n%s:\n", strings.ToUpper(category))
		headerLen := utf8.RuneCountInString(header)
		wroteHeader := false

		for _, entry := range grouped[category] {
			block := fmt.Sprintf("Q: %s\nA: %s\n\n", entry.Question, entry.Answer)
			cost := utf8.RuneCountInString(block)
			if !wroteHeader {
				cost += headerLen
			}
			if cost > budget {
				return b.String()
			}
			if !wroteHeader {
				b.WriteString(header)
				wroteHeader = true
			}
			b.WriteString(block)
			budget -= cost
		}
	}

	return b.String()
}
