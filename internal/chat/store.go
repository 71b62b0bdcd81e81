//go:generate mockgen -source ./store.go -destination=./mocks/store.go -package=mock_chat
package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bafain/storefront-client/internal/api"
)

// KeyMessages is the durable transcript key. Logout preserves it; only an
// explicit clear removes it.
const KeyMessages = "cs:messages"

const (
	maxStoredMessages  = 30
	maxHistoryMessages = 12
	maxInputLength     = 1200

	msgLoginRequired = "Silakan login untuk menggunakan CS chat."

	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one transcript entry.
type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// API is the support-chat endpoint.
type API interface {
	SendChat(ctx context.Context, messages []api.ChatMessagePayload) (api.ChatResponse, error)
}

// Credentials is the read-only session view.
type Credentials interface {
	HasSession() bool
}

// KV persists the transcript.
type KV interface {
	GetJSON(key string, dest any) bool
	SetJSON(key string, v any)
	Delete(keys ...string)
}

// State is the observable chat snapshot.
type State struct {
	Messages  []Message
	Loading   bool
	Error     string
	LastModel string
}

// Store holds the support-chat transcript, bounded to the most recent
// messages both in durable storage and in the history sent to the backend.
type Store struct {
	api   API
	creds Credentials
	kv    KV
	log   *zap.Logger

	mu    sync.Mutex
	state State

	timeNow func() time.Time
}

func NewStore(apiClient API, creds Credentials, kv KV, log *zap.Logger) *Store {
	s := &Store{
		api:     apiClient,
		creds:   creds,
		kv:      kv,
		log:     log,
		timeNow: time.Now,
	}
	s.state.Messages = s.restore()
	return s
}

// restore loads the persisted transcript, dropping malformed entries and
// trimming to the retention bound.
func (s *Store) restore() []Message {
	var stored []Message
	if !s.kv.GetJSON(KeyMessages, &stored) {
		return nil
	}
	valid := stored[:0:0]
	for _, m := range stored {
		if m.ID == "" || m.Content == "" {
			continue
		}
		if m.Role != RoleUser && m.Role != RoleAssistant {
			continue
		}
		valid = append(valid, m)
	}
	return tail(valid, maxStoredMessages)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.state
	snap.Messages = append([]Message(nil), s.state.Messages...)
	return snap
}

// SendMessage appends the user message, posts the bounded history and
// appends the assistant reply. It reports whether a reply arrived.
func (s *Store) SendMessage(ctx context.Context, content string) (bool, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return false, nil
	}
	if !s.creds.HasSession() {
		s.mu.Lock()
		s.state.Error = msgLoginRequired
		s.mu.Unlock()
		return false, nil
	}

	s.mu.Lock()
	if s.state.Loading {
		s.mu.Unlock()
		return false, nil
	}
	s.state.Loading = true
	s.state.Error = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.state.Loading = false
		s.mu.Unlock()
	}()

	// The bound counts characters, not bytes; a byte slice could cut a
	// multi-byte rune in half.
	if runes := []rune(content); len(runes) > maxInputLength {
		content = string(runes[:maxInputLength])
	}

	userMessage := s.newMessage(RoleUser, content)
	s.appendAndPersist(userMessage)

	history := s.historyPayload()
	resp, err := s.api.SendChat(ctx, history)
	if err != nil {
		s.log.Warn("chat send failed", zap.Error(err))
		s.mu.Lock()
		s.state.Error = err.Error()
		s.mu.Unlock()
		return false, err
	}

	s.appendAndPersist(s.newMessage(RoleAssistant, resp.Message))
	s.mu.Lock()
	s.state.LastModel = resp.Model
	s.mu.Unlock()
	return true, nil
}

// ClearMessages wipes the transcript, durably. This is the user's explicit
// action; logout leaves the transcript alone.
func (s *Store) ClearMessages() {
	s.kv.Delete(KeyMessages)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Messages = nil
	s.state.LastModel = ""
}

// ClearError discards the recorded error message.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = ""
}

func (s *Store) newMessage(role, content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: s.timeNow().UTC(),
	}
}

func (s *Store) appendAndPersist(message Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Messages = tail(append(s.state.Messages, message), maxStoredMessages)
	s.kv.SetJSON(KeyMessages, s.state.Messages)
}

func (s *Store) historyPayload() []api.ChatMessagePayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	recent := tail(s.state.Messages, maxHistoryMessages)
	payload := make([]api.ChatMessagePayload, len(recent))
	for i, m := range recent {
		payload[i] = api.ChatMessagePayload{Role: m.Role, Content: m.Content}
	}
	return payload
}

func tail(messages []Message, n int) []Message {
	if len(messages) <= n {
		return messages
	}
	return messages[len(messages)-n:]
}
