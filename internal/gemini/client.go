// Package gemini wraps the google.golang.org/genai SDK behind the narrow
// collaborator surface the chat loop needs: create a client, open a seeded
// chat session, send one prompt at a time.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/StaccahStaccah/CLI-AI-Chatbot/internal/config"
	"github.com/StaccahStaccah/CLI-AI-Chatbot/internal/history"
	"github.com/StaccahStaccah/CLI-AI-Chatbot/internal/logging"
)

// Client owns the SDK handle and the generation settings applied to every
// chat session it opens.
type Client struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
}

// NewClient initializes the Gemini client.
func NewClient(ctx context.Context, apiKey, model string, gen config.Generation) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		logging.APIError("client init failed: %v", err)
		return nil, fmt.Errorf("failed to initialize Gemini: %w", err)
	}
	logging.API("client initialized for model %s", model)

	return &Client{
		client: client,
		model:  model,
		config: generationConfig(gen),
	}, nil
}

// generationConfig maps the file-backed settings onto the SDK config.
func generationConfig(gen config.Generation) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(gen.Temperature)),
		TopP:            genai.Ptr(float32(gen.TopP)),
		TopK:            genai.Ptr(float32(gen.TopK)),
		MaxOutputTokens: int32(gen.MaxTokens),
	}
}

// StartChat opens a chat session seeded with the working log.
func (c *Client) StartChat(ctx context.Context, log []history.Message) (*Session, error) {
	chat, err := c.client.Chats.Create(ctx, c.model, c.config, toContents(log))
	if err != nil {
		logging.APIError("chat session start failed: %v", err)
		return nil, fmt.Errorf("failed to start chat session: %w", err)
	}
	logging.API("chat session started with %d seed messages", len(log))
	return &Session{chat: chat}, nil
}

// toContents converts log entries to SDK contents, preserving role and part
// order.
func toContents(log []history.Message) []*genai.Content {
	if len(log) == 0 {
		return nil
	}
	contents := make([]*genai.Content, 0, len(log))
	for _, msg := range log {
		if len(msg.Parts) == 0 {
			continue
		}
		role := genai.Role(genai.RoleUser)
		if msg.Role == history.RoleModel {
			role = genai.RoleModel
		}
		content := genai.NewContentFromText(msg.Parts[0], role)
		for _, part := range msg.Parts[1:] {
			content.Parts = append(content.Parts, &genai.Part{Text: part})
		}
		contents = append(contents, content)
	}
	return contents
}

// Session is one live chat with accumulated conversation context.
type Session struct {
	chat *genai.Chat
}

// Send forwards one prompt and blocks until the model replies. Any error here
// is fatal to the process; there is no retry.
func (s *Session) Send(ctx context.Context, prompt string) (string, error) {
	resp, err := s.chat.SendMessage(ctx, genai.Part{Text: prompt})
	if err != nil {
		logging.APIError("send failed: %v", err)
		return "", fmt.Errorf("chat interaction failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		logging.APIError("empty response from model")
		return "", fmt.Errorf("chat interaction failed: model returned an empty response")
	}
	logging.APIDebug("prompt %d chars, reply %d chars", len(prompt), len(text))
	return text, nil
}
