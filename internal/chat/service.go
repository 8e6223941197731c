package chat

import (
	"fmt"
	"strings"

	"lastomo-app/internal/llm"
	"lastomo-app/internal/logger"

	"github.com/sirupsen/logrus"
)

// Service assembles the conversation context and delegates to the
// completion provider.
type Service struct {
	provider llm.Provider
}

// NewService creates a new chat Service backed by the given provider
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// BuildConversation produces the ordered message sequence sent to the
// provider: one system entry, the client-supplied history verbatim and in
// order, then the new message as a final user entry. For a history of
// length N the result always has N+2 entries.
func BuildConversation(history []llm.Message, message string) []llm.Message {
	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: "system", Content: SystemPrompt})

	// History is trusted as-is: roles and content are copied verbatim with
	// no reformatting, filtering, or length capping.
	messages = append(messages, history...)

	messages = append(messages, llm.Message{Role: "user", Content: message})
	return messages
}

// Respond sends the assembled conversation to the provider and returns the
// generated text with surrounding whitespace trimmed.
func (s *Service) Respond(message string, history []llm.Message) (string, error) {
	messages := BuildConversation(history, message)

	logger.Log.WithFields(logrus.Fields{
		"history_length": len(history),
		"message_count":  len(messages),
	}).Debug("Assembled conversation context")

	response, err := s.provider.Complete(messages)
	if err != nil {
		return "", fmt.Errorf("completion provider error: %w", err)
	}

	return strings.TrimSpace(response), nil
}
