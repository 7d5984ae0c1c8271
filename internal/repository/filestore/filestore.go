package filestore

import (
	"context"
	"os"
	"path/filepath"
	"toDoBoard/internal/repository"

	"github.com/pkg/errors"
)

const (
	fileExt  = ".json"
	filePerm = 0o644
	dirPerm  = 0o755
)

// Storage хранит каждую коллекцию в отдельном файле <dir>/<name>.json.
type Storage struct {
	dir string
}

func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, errors.Wrapf(err, "create data dir %s", dir)
	}
	return &Storage{dir: dir}, nil
}

func (s *Storage) Path(name string) string {
	return filepath.Join(s.dir, name+fileExt)
}

func (s *Storage) Load(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, repository.ErrBlobNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *Storage) Save(_ context.Context, name string, data []byte) error {
	return os.WriteFile(s.Path(name), data, filePerm)
}
