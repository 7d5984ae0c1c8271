package db

import (
	"context"
	"errors"
	"fmt"
	"toDoBoard/internal/repository"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
)

// PgxIface - общий интерфейс для мока/адаптера.
type PgxIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close(ctx context.Context) error
}

// pgxConnAdapter - адаптер для *pgx.Conn.
type pgxConnAdapter struct {
	*pgx.Conn
}

func (a pgxConnAdapter) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return a.Conn.Exec(ctx, sql, args...)
}

func (a pgxConnAdapter) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return a.Conn.QueryRow(ctx, sql, args...)
}

func (a pgxConnAdapter) Close(ctx context.Context) error {
	return a.Conn.Close(ctx)
}

// Storage хранит коллекции в таблице collections: одна строка на коллекцию.
type Storage struct {
	db PgxIface
}

func NewStorage(connStr string) (*Storage, error) {
	conn, err := pgx.Connect(context.Background(), connStr)
	if err != nil {
		return nil, err
	}

	return &Storage{db: pgxConnAdapter{Conn: conn}}, nil
}

func (s *Storage) Load(ctx context.Context, name string) ([]byte, error) {
	var data string
	err := s.db.QueryRow(ctx, "SELECT data FROM collections WHERE name = $1", name).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrBlobNotFound
		}
		return nil, err
	}
	return []byte(data), nil
}

func (s *Storage) Save(ctx context.Context, name string, data []byte) error {
	_, err := s.db.Exec(
		ctx,
		"INSERT INTO collections (name, data) VALUES ($1, $2) ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data",
		name,
		string(data),
	)
	return err
}

func (s *Storage) Close(ctx context.Context) error {
	return s.db.Close(ctx)
}

func Migrations(dsn string, migratePath string) error {
	mPath := fmt.Sprintf("file://%s", migratePath)
	m, err := migrate.New(mPath, dsn)

	if err != nil {
		return err
	}

	if err = m.Up(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		log.Printf("DB is already up to date")
	}

	log.Printf("Migration complete")

	return nil
}
