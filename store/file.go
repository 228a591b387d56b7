package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// FileStore is the closest server-side analog of browser local storage:
// one JSON file, loaded on open, rewritten on every save. Concurrent
// processes writing the same file race last-write-wins, exactly like
// concurrent tabs sharing local storage.
type FileStore struct {
	mu   sync.Mutex
	path string
	data map[string]map[string]json.RawMessage
}

func NewFileStore(path string) (*FileStore, error) {
	f := &FileStore{
		path: path,
		data: make(map[string]map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &f.data); err != nil {
			return nil, fmt.Errorf("parse state file %s: %w", path, err)
		}
	}
	return f, nil
}

func (f *FileStore) Get(_ context.Context, contextID, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if bucket, ok := f.data[contextID]; ok {
		if v, ok := bucket[key]; ok {
			return []byte(v), nil
		}
	}
	return nil, ErrNotFound
}

func (f *FileStore) Set(_ context.Context, contextID, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	bucket, ok := f.data[contextID]
	if !ok {
		bucket = make(map[string]json.RawMessage)
		f.data[contextID] = bucket
	}
	bucket[key] = json.RawMessage(value)
	return f.flush()
}

func (f *FileStore) Delete(_ context.Context, contextID, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if bucket, ok := f.data[contextID]; ok {
		delete(bucket, key)
		if len(bucket) == 0 {
			delete(f.data, contextID)
		}
	}
	return f.flush()
}

// flush rewrites the whole file. Caller holds the lock.
func (f *FileStore) flush() error {
	raw, err := json.Marshal(f.data)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.WriteFile(f.path, raw, 0o600); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}
