package repository

import (
	"context"
	"encoding/json"
	"toDoBoard/internal/domain/tag/tagmodels"
	"toDoBoard/internal/domain/task/taskmodels"
	"toDoBoard/internal/domain/user/usermodels"

	"github.com/pkg/errors"
)

const (
	UsersCollection = "users"
	TagsCollection  = "tags"
	TasksCollection = "tasks"
)

// ErrBlobNotFound возвращается BlobStore, если коллекция ещё ни разу не сохранялась.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore - хранилище целых коллекций в виде байтов.
// Save полностью перезаписывает содержимое, частичных записей нет.
type BlobStore interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, data []byte) error
}

// Storage - типизированная обёртка над BlobStore. Ничего не кэширует:
// каждый вызов читает или пишет blob целиком.
type Storage struct {
	blobs BlobStore
}

func NewStorage(blobs BlobStore) *Storage {
	return &Storage{blobs: blobs}
}

func (s *Storage) LoadUsers(ctx context.Context) ([]usermodels.User, error) {
	return load[usermodels.User](ctx, s.blobs, UsersCollection)
}

func (s *Storage) SaveUsers(ctx context.Context, users []usermodels.User) error {
	return save(ctx, s.blobs, UsersCollection, users)
}

func (s *Storage) LoadTags(ctx context.Context) ([]tagmodels.Tag, error) {
	return load[tagmodels.Tag](ctx, s.blobs, TagsCollection)
}

func (s *Storage) SaveTags(ctx context.Context, tags []tagmodels.Tag) error {
	return save(ctx, s.blobs, TagsCollection, tags)
}

func (s *Storage) LoadTasks(ctx context.Context) ([]taskmodels.Task, error) {
	return load[taskmodels.Task](ctx, s.blobs, TasksCollection)
}

func (s *Storage) SaveTasks(ctx context.Context, tasks []taskmodels.Task) error {
	return save(ctx, s.blobs, TasksCollection, tasks)
}

func load[T any](ctx context.Context, blobs BlobStore, name string) ([]T, error) {
	data, err := blobs.Load(ctx, name)
	if err != nil {
		if errors.Is(err, ErrBlobNotFound) {
			return []T{}, nil
		}
		return nil, errors.Wrapf(err, "load %s", name)
	}

	records := []T{}
	if err = json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrapf(err, "decode %s", name)
	}
	// "null" в файле превращает срез в nil
	if records == nil {
		records = []T{}
	}

	return records, nil
}

func save[T any](ctx context.Context, blobs BlobStore, name string, records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encode %s", name)
	}

	if err = blobs.Save(ctx, name, data); err != nil {
		return errors.Wrapf(err, "save %s", name)
	}
	return nil
}
