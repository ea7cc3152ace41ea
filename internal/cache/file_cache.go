package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type Entry[T any] struct {
	Data      T         `json:"data"`
	CreatedAt time.Time `json:"created_at"`
}

// FileCache stores JSON-encoded entries under a directory, one file
// per key. Entries older than ttl are treated as misses; ttl 0 never
// expires.
type FileCache[T any] struct {
	cacheDir string
	ttl      time.Duration
}

func NewFileCache[T any](cacheDir string, ttl time.Duration) *FileCache[T] {
	return &FileCache[T]{cacheDir: cacheDir, ttl: ttl}
}

func (fc *FileCache[T]) GenerateKey(params ...interface{}) string {
	var keyData string
	for _, param := range params {
		keyData += fmt.Sprintf("%v_", param)
	}
	h := sha1.New()
	h.Write([]byte(keyData))
	return hex.EncodeToString(h.Sum(nil))
}

func (fc *FileCache[T]) Get(key string) (T, bool) {
	var zero T

	data, err := os.ReadFile(fc.path(key))
	if err != nil {
		return zero, false
	}

	var entry Entry[T]
	if err := json.Unmarshal(data, &entry); err != nil {
		return zero, false
	}
	if fc.ttl > 0 && time.Since(entry.CreatedAt) > fc.ttl {
		return zero, false
	}

	return entry.Data, true
}

func (fc *FileCache[T]) Set(key string, data T) error {
	if err := os.MkdirAll(fc.cacheDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	entry := Entry[T]{Data: data, CreatedAt: time.Now()}
	encoded, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	return os.WriteFile(fc.path(key), encoded, 0o644)
}

func (fc *FileCache[T]) path(key string) string {
	return filepath.Join(fc.cacheDir, key+".json")
}
