// Package storage is the client's durable key-value state: the moral
// equivalent of the browser's localStorage, backed by a single JSON file.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists a flat string map to disk, write-through on every
// mutation. An empty path or an unreadable file degrades to in-memory
// operation: reads answer "absent", writes are kept for the process
// lifetime only. Nothing here returns an error to callers; session logic
// must behave as "no session" rather than fail.
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

func NewFileStore(path string) *FileStore {
	fs := &FileStore{
		path:   path,
		values: make(map[string]string),
	}
	fs.load()
	return fs
}

func (fs *FileStore) load() {
	if fs.path == "" {
		return
	}
	file, err := os.Open(fs.path)
	if err != nil {
		return
	}
	defer file.Close()

	var data map[string]string
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return
	}
	fs.values = data
	if fs.values == nil {
		fs.values = make(map[string]string)
	}
}

// Get returns the stored value for key and whether it was present.
func (fs *FileStore) Get(key string) (string, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	v, ok := fs.values[key]
	return v, ok
}

// GetJSON decodes the stored value for key into dest. A missing or
// malformed value reports false and leaves dest untouched.
func (fs *FileStore) GetJSON(key string, dest any) bool {
	raw, ok := fs.Get(key)
	if !ok || raw == "" {
		return false
	}
	return json.Unmarshal([]byte(raw), dest) == nil
}

// Set stores value under key and flushes to disk.
func (fs *FileStore) Set(key, value string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.values[key] = value
	fs.save()
}

// SetJSON marshals v and stores it under key. Unmarshalable values are
// dropped silently; state here is best-effort by contract.
func (fs *FileStore) SetJSON(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	fs.Set(key, string(raw))
}

// Delete removes the given keys and flushes to disk.
func (fs *FileStore) Delete(keys ...string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	for _, key := range keys {
		delete(fs.values, key)
	}
	fs.save()
}

// Keys returns a snapshot of the stored key set.
func (fs *FileStore) Keys() []string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	keys := make([]string, 0, len(fs.values))
	for key := range fs.values {
		keys = append(keys, key)
	}
	return keys
}

// ClearExcept removes every key not listed in keep. Logout uses this to wipe
// session state while preserving the chat transcript.
func (fs *FileStore) ClearExcept(keep ...string) {
	keepSet := make(map[string]struct{}, len(keep))
	for _, k := range keep {
		keepSet[k] = struct{}{}
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()
	for key := range fs.values {
		if _, ok := keepSet[key]; !ok {
			delete(fs.values, key)
		}
	}
	fs.save()
}

// save flushes the map to disk. Callers hold fs.mu. Failures are swallowed:
// a read-only disk must not break the client, it only loses persistence.
func (fs *FileStore) save() {
	if fs.path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(fs.path), 0o755); err != nil {
		return
	}
	raw, err := json.MarshalIndent(fs.values, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(fs.path, raw, 0o600)
}
