package session

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"
)

// Storage keys. The blobs and the extracted tokens are four independent
// records so that a partially available session (refresh token only) still
// lets the access-token-less branches behave correctly.
const (
	KeySession      = "auth:session"
	KeyUser         = "auth:user"
	KeyAccessToken  = "auth:accessToken"
	KeyRefreshToken = "auth:refreshToken"
)

// KV is the durable storage surface the credential store needs.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(keys ...string)
}

// Identity is what the client knows about the logged-in user without asking
// the backend.
type Identity struct {
	ID    string
	Email string
	Name  string
}

// Store owns the current session. Every other component reads credentials
// through it and never mutates them directly.
type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

type tokenFields struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Save derives the access and refresh tokens from the session payload and
// writes the four records. A nil blob removes the corresponding records.
func (s *Store) Save(session, user json.RawMessage) {
	if len(session) > 0 {
		s.kv.Set(KeySession, string(session))
	} else {
		s.kv.Delete(KeySession)
	}

	if len(user) > 0 {
		s.kv.Set(KeyUser, string(user))
	} else {
		s.kv.Delete(KeyUser)
	}

	var tokens tokenFields
	if len(session) > 0 {
		_ = json.Unmarshal(session, &tokens)
	}

	if tokens.AccessToken != "" {
		s.kv.Set(KeyAccessToken, tokens.AccessToken)
	} else {
		s.kv.Delete(KeyAccessToken)
	}

	if tokens.RefreshToken != "" {
		s.kv.Set(KeyRefreshToken, tokens.RefreshToken)
	} else {
		s.kv.Delete(KeyRefreshToken)
	}
}

// Clear removes all four records.
func (s *Store) Clear() {
	s.kv.Delete(KeyAccessToken, KeyRefreshToken, KeySession, KeyUser)
}

func (s *Store) AccessToken() string {
	v, _ := s.kv.Get(KeyAccessToken)
	return v
}

func (s *Store) RefreshToken() string {
	v, _ := s.kv.Get(KeyRefreshToken)
	return v
}

// Session returns the stored session blob, or nil when absent.
func (s *Store) Session() json.RawMessage {
	v, ok := s.kv.Get(KeySession)
	if !ok || v == "" {
		return nil
	}
	return json.RawMessage(v)
}

// User returns the stored user blob, or nil when absent.
func (s *Store) User() json.RawMessage {
	v, ok := s.kv.Get(KeyUser)
	if !ok || v == "" {
		return nil
	}
	return json.RawMessage(v)
}

// HasSession reports whether an access credential is present.
func (s *Store) HasSession() bool {
	return s.AccessToken() != ""
}

// Identity resolves the last-known user identity: the stored user blob
// first, then unverified access-token claims as a fallback. Verification is
// the backend's job; the client only needs display data.
func (s *Store) Identity() Identity {
	var user struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if raw := s.User(); raw != nil {
		if json.Unmarshal(raw, &user) == nil && (user.ID != "" || user.Email != "") {
			return Identity{ID: user.ID, Email: user.Email, Name: user.Name}
		}
	}

	token := s.AccessToken()
	if token == "" {
		return Identity{}
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Identity{}
	}
	identity := Identity{}
	if sub, err := claims.GetSubject(); err == nil {
		identity.ID = sub
	}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	return identity
}
