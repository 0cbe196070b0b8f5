package services

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/foorum/internal/client/storage"
	"github.com/goccy/go-json"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// memStore is an in-memory storage.Store that encodes like the SQLite adapter.
type memStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	writes int
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Load(_ context.Context, key string, dst any) bool {
	m.mu.Lock()
	raw, ok := m.data[key]
	m.mu.Unlock()
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func (m *memStore) Write(_ context.Context, entries ...storage.Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	for _, e := range entries {
		b, err := json.Marshal(e.Value)
		if err != nil {
			return
		}
		m.data[e.Key] = b
	}
}

func (m *memStore) Remove(_ context.Context, keys ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
}

func (m *memStore) setRaw(key, raw string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = []byte(raw)
}

func (m *memStore) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}
