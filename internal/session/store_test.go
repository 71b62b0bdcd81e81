package session

import (
	"encoding/json"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bafain/storefront-client/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(storage.NewFileStore(""))
}

func TestSaveSplitsSessionIntoFourRecords(t *testing.T) {
	kv := storage.NewFileStore("")
	s := NewStore(kv)

	session := json.RawMessage(`{"access_token":"at-1","refresh_token":"rt-1","expires_in":3600}`)
	user := json.RawMessage(`{"id":"u-1","email":"budi@example.com"}`)
	s.Save(session, user)

	assert.Equal(t, "at-1", s.AccessToken())
	assert.Equal(t, "rt-1", s.RefreshToken())
	assert.JSONEq(t, string(session), string(s.Session()))
	assert.JSONEq(t, string(user), string(s.User()))
	assert.True(t, s.HasSession())

	raw, ok := kv.Get(KeyAccessToken)
	require.True(t, ok)
	assert.Equal(t, "at-1", raw)
}

func TestSaveWithoutTokensRemovesTokenRecords(t *testing.T) {
	s := newTestStore(t)
	s.Save(json.RawMessage(`{"access_token":"at-1","refresh_token":"rt-1"}`), nil)
	require.True(t, s.HasSession())

	// A session blob with no tokens must not leave stale credentials behind.
	s.Save(json.RawMessage(`{"expires_in":0}`), nil)
	assert.Empty(t, s.AccessToken())
	assert.Empty(t, s.RefreshToken())
	assert.False(t, s.HasSession())
	assert.NotNil(t, s.Session())
}

func TestRefreshTokenSurvivesWithoutAccessToken(t *testing.T) {
	s := newTestStore(t)
	s.Save(json.RawMessage(`{"refresh_token":"rt-only"}`), nil)

	assert.False(t, s.HasSession())
	assert.Equal(t, "rt-only", s.RefreshToken())
}

func TestClearRemovesEverything(t *testing.T) {
	s := newTestStore(t)
	s.Save(
		json.RawMessage(`{"access_token":"at","refresh_token":"rt"}`),
		json.RawMessage(`{"id":"u-1"}`),
	)

	s.Clear()

	assert.False(t, s.HasSession())
	assert.Empty(t, s.RefreshToken())
	assert.Nil(t, s.Session())
	assert.Nil(t, s.User())
}

func TestIdentityPrefersUserBlob(t *testing.T) {
	s := newTestStore(t)
	s.Save(
		json.RawMessage(`{"access_token":"not-a-jwt"}`),
		json.RawMessage(`{"id":"u-1","email":"budi@example.com","name":"Budi"}`),
	)

	identity := s.Identity()
	assert.Equal(t, "u-1", identity.ID)
	assert.Equal(t, "budi@example.com", identity.Email)
	assert.Equal(t, "Budi", identity.Name)
}

func TestIdentityFallsBackToTokenClaims(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "u-9",
		"email": "siti@example.com",
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	s := newTestStore(t)
	s.Save(json.RawMessage(`{"access_token":"`+signed+`"}`), nil)

	identity := s.Identity()
	assert.Equal(t, "u-9", identity.ID)
	assert.Equal(t, "siti@example.com", identity.Email)
}

func TestIdentityEmptyWithoutSession(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, Identity{}, s.Identity())
}
