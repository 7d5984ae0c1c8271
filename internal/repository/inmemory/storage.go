package inmemory

import (
	"context"
	"sync"
	"toDoBoard/internal/repository"
)

// Storage держит blob'ы в памяти. Мьютекс защищает только саму map,
// конкурентные запросы по-прежнему могут перезаписать друг друга.
type Storage struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewInMemoryStorage() *Storage {
	return &Storage{
		blobs: make(map[string][]byte),
	}
}

func (storage *Storage) Load(_ context.Context, name string) ([]byte, error) {
	storage.mu.RLock()
	defer storage.mu.RUnlock()

	data, ok := storage.blobs[name]
	if !ok {
		return nil, repository.ErrBlobNotFound
	}

	return append([]byte(nil), data...), nil
}

func (storage *Storage) Save(_ context.Context, name string, data []byte) error {
	storage.mu.Lock()
	defer storage.mu.Unlock()

	storage.blobs[name] = append([]byte(nil), data...)
	return nil
}
