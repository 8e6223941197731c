package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"lastomo-app/internal/config"
	"lastomo-app/internal/logger"

	"github.com/sirupsen/logrus"
)

// Generation parameters are fixed configuration constants, not client-tunable.
const (
	chatTemperature = 0.7
	chatMaxTokens   = 1000
)

// OpenAIProvider implements Provider using direct OpenAI API calls
type OpenAIProvider struct {
	config *config.LLMConfig
	client *http.Client
}

// NewOpenAIProvider creates a new OpenAI provider with config
func NewOpenAIProvider(llmConfig *config.LLMConfig) *OpenAIProvider {
	return &OpenAIProvider{
		config: llmConfig,
		// Bounded timeout so a stalled provider cannot hold the handler forever
		client: &http.Client{Timeout: llmConfig.Timeout},
	}
}

type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type chatCompletionResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// Complete sends the conversation to the chat completions endpoint and
// returns the top candidate's text.
func (p *OpenAIProvider) Complete(messages []Message) (string, error) {
	if p.config.APIKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not configured")
	}

	logger.Log.WithFields(logrus.Fields{
		"model":         p.config.Model,
		"message_count": len(messages),
	}).Info("Calling OpenAI API")

	reqBody := chatCompletionRequest{
		Model:       p.config.Model,
		Messages:    messages,
		Temperature: chatTemperature,
		MaxTokens:   chatMaxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("error marshaling request: %w", err)
	}

	req, err := http.NewRequest("POST", p.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.config.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response body: %w", err)
	}

	logger.Log.WithField("response_length", len(body)).Debug("Received raw response")

	var chatResp chatCompletionResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("error decoding response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	content := chatResp.Choices[0].Message.Content
	logger.Log.WithField("content_length", len(content)).Debug("Extracted content from response")
	return content, nil
}
