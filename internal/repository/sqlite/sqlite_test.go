package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"toDoBoard/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := NewStorage(filepath.Join(t.TempDir(), "board.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, s.Close())
	})
	return s
}

func TestStorage_LoadAbsent(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.Load(context.Background(), "users")
	assert.ErrorIs(t, err, repository.ErrBlobNotFound)
}

func TestStorage_SaveOverwrites(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "tasks", []byte(`[{"id":1}]`)))
	require.NoError(t, s.Save(ctx, "tasks", []byte(`[]`)))

	data, err := s.Load(ctx, "tasks")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	_, err = s.Load(ctx, "tags")
	assert.ErrorIs(t, err, repository.ErrBlobNotFound)
}

func TestStorage_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.db")
	ctx := context.Background()

	s, err := NewStorage(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "users", []byte(`[{"id":1,"name":"Al"}]`)))
	require.NoError(t, s.Close())

	s, err = NewStorage(path)
	require.NoError(t, err)
	defer s.Close()

	data, err := s.Load(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1,"name":"Al"}]`, string(data))
}
