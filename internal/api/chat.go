package api

import (
	"context"
	"net/http"
)

type ChatMessagePayload struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatUsage struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	TotalTokens      int64 `json:"total_tokens"`
}

type ChatResponse struct {
	Message string     `json:"message"`
	Model   string     `json:"model"`
	Usage   *ChatUsage `json:"usage,omitempty"`
}

// SendChat posts the bounded conversation history to the support-chat
// endpoint and returns the assistant reply.
func (c *Client) SendChat(ctx context.Context, messages []ChatMessagePayload) (ChatResponse, error) {
	return Do[ChatResponse](ctx, c, "/cs/chat", RequestOptions{
		Method:  http.MethodPost,
		Payload: map[string]any{"messages": messages},
	})
}
