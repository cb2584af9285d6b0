package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"farmer-assist/backend/internal/models"

	openai "github.com/sashabaranov/go-openai"
)

// maxReplyTokens caps assistant replies so chat responses stay readable
const maxReplyTokens = 400

// LLMClient produces an assistant reply from conversation context
type LLMClient interface {
	Complete(ctx context.Context, language string, history []models.ChatMessage, userMessage string) (string, error)
}

// OpenAIAdapter calls the OpenAI chat completions API
type OpenAIAdapter struct {
	client *openai.Client
	model  string
}

// NewOpenAIAdapter creates an adapter authenticated with apiKey
func NewOpenAIAdapter(apiKey string, timeout time.Duration) *OpenAIAdapter {
	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.HTTPClient = &http.Client{Timeout: timeout}

	return &OpenAIAdapter{
		client: openai.NewClientWithConfig(clientConfig),
		model:  openai.GPT4o,
	}
}

func systemPrompt(language string) string {
	prompt := "You are an agriculture assistant for farmers. Give practical, concise advice " +
		"on crops, soil, irrigation, pests and farm planning. Keep answers short and actionable."
	if language != "" && language != "en" {
		prompt += fmt.Sprintf(" Respond in the language with code %q.", language)
	}
	return prompt
}

// Complete sends the conversation to the completion API and returns the reply text
func (a *OpenAIAdapter) Complete(ctx context.Context, language string, history []models.ChatMessage, userMessage string) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt(language)},
	}

	for _, msg := range history {
		role := openai.ChatMessageRoleAssistant
		if msg.Sender == models.SenderUser {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Text,
		})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMessage,
	})

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     a.model,
		Messages:  messages,
		MaxTokens: maxReplyTokens,
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errors.New("completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
