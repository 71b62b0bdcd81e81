package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreSetGet(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "state.json"))

	_, ok := fs.Get("missing")
	assert.False(t, ok)

	fs.Set("auth:accessToken", "token-1")
	v, ok := fs.Get("auth:accessToken")
	assert.True(t, ok)
	assert.Equal(t, "token-1", v)

	fs.Delete("auth:accessToken")
	_, ok = fs.Get("auth:accessToken")
	assert.False(t, ok)
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")

	fs := NewFileStore(path)
	fs.Set("a", "1")
	fs.SetJSON("b", map[string]int{"qty": 2})

	reopened := NewFileStore(path)
	v, ok := reopened.Get("a")
	require.True(t, ok)
	assert.Equal(t, "1", v)

	var decoded map[string]int
	require.True(t, reopened.GetJSON("b", &decoded))
	assert.Equal(t, 2, decoded["qty"])
}

func TestFileStoreEmptyPathStaysInMemory(t *testing.T) {
	fs := NewFileStore("")
	fs.Set("k", "v")
	v, ok := fs.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestFileStoreCorruptFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	fs := NewFileStore(path)
	_, ok := fs.Get("anything")
	assert.False(t, ok)

	// Still writable after the bad load.
	fs.Set("k", "v")
	v, ok := fs.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestFileStoreGetJSONRejectsMalformed(t *testing.T) {
	fs := NewFileStore("")
	fs.Set("k", "{not json")

	var dest map[string]string
	assert.False(t, fs.GetJSON("k", &dest))
	assert.Nil(t, dest)
}

func TestFileStoreKeys(t *testing.T) {
	fs := NewFileStore("")
	fs.Set("a", "1")
	fs.Set("b", "2")

	assert.ElementsMatch(t, []string{"a", "b"}, fs.Keys())
}

func TestFileStoreClearExcept(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	fs := NewFileStore(path)
	fs.Set("auth:accessToken", "t")
	fs.Set("checkout:orderId", "o-1")
	fs.Set("cs:messages", `[{"id":"m1"}]`)

	fs.ClearExcept("cs:messages")

	_, ok := fs.Get("auth:accessToken")
	assert.False(t, ok)
	_, ok = fs.Get("checkout:orderId")
	assert.False(t, ok)
	v, ok := fs.Get("cs:messages")
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"m1"}]`, v)

	// The wipe is durable, not only in-memory.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk map[string]string
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	assert.Len(t, onDisk, 1)
}
