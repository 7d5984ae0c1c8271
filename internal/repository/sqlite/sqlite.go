package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"toDoBoard/internal/repository"

	_ "github.com/mattn/go-sqlite3" // драйвер sqlite3
)

const schema = `CREATE TABLE IF NOT EXISTS collections (
	name TEXT PRIMARY KEY,
	data TEXT NOT NULL
)`

// Storage - та же таблица collections, что и в Postgres, но в файле sqlite.
type Storage struct {
	db *sql.DB
}

func NewStorage(path string) (*Storage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err = db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Load(ctx context.Context, name string) ([]byte, error) {
	var data string
	err := s.db.QueryRowContext(ctx, "SELECT data FROM collections WHERE name = ?", name).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrBlobNotFound
		}
		return nil, err
	}
	return []byte(data), nil
}

func (s *Storage) Save(ctx context.Context, name string, data []byte) error {
	_, err := s.db.ExecContext(
		ctx,
		"INSERT INTO collections (name, data) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET data = excluded.data",
		name,
		string(data),
	)
	return err
}

func (s *Storage) Close() error {
	return s.db.Close()
}
