package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"toDoBoard/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_LoadAbsent(t *testing.T) {
	s, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.Load(context.Background(), "users")
	assert.ErrorIs(t, err, repository.ErrBlobNotFound)
}

func TestStorage_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStorage(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "tasks", []byte("[\n  1\n]")))

	onDisk, err := os.ReadFile(filepath.Join(dir, "tasks.json"))
	require.NoError(t, err)
	assert.Equal(t, "[\n  1\n]", string(onDisk))

	require.NoError(t, s.Save(ctx, "tasks", []byte("[]")))
	data, err := s.Load(ctx, "tasks")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestNewStorage_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	_, err := NewStorage(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStorage_LoadOtherError(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStorage(dir)
	require.NoError(t, err)

	// каталог вместо файла - ошибка чтения, но не "нет blob'а"
	require.NoError(t, os.Mkdir(filepath.Join(dir, "tags.json"), 0o755))

	_, err = s.Load(context.Background(), "tags")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrBlobNotFound)
}
