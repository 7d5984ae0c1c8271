package inmemory

import (
	"context"
	"testing"
	"toDoBoard/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_Blobs(t *testing.T) {
	storage := NewInMemoryStorage()
	ctx := context.Background()

	tests := []struct {
		name        string
		action      func() ([]byte, error)
		check       func(t *testing.T, result []byte)
		expectError error
	}{
		{
			name: "Load_absent",
			action: func() ([]byte, error) {
				return storage.Load(ctx, "users")
			},
			check:       func(_ *testing.T, _ []byte) {},
			expectError: repository.ErrBlobNotFound,
		},
		{
			name: "Save_success",
			action: func() ([]byte, error) {
				return nil, storage.Save(ctx, "users", []byte(`[{"id":1}]`))
			},
			check: func(t *testing.T, _ []byte) {
				assert.Len(t, storage.blobs, 1)
			},
		},
		{
			name: "Load_success",
			action: func() ([]byte, error) {
				return storage.Load(ctx, "users")
			},
			check: func(t *testing.T, result []byte) {
				assert.Equal(t, `[{"id":1}]`, string(result))
			},
		},
		{
			name: "Save_overwrites",
			action: func() ([]byte, error) {
				return nil, storage.Save(ctx, "users", []byte(`[]`))
			},
			check: func(t *testing.T, _ []byte) {
				data, err := storage.Load(ctx, "users")
				require.NoError(t, err)
				assert.Equal(t, `[]`, string(data))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := tc.action()
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
			} else {
				assert.NoError(t, err)
			}
			tc.check(t, result)
		})
	}
}

func TestStorage_LoadReturnsCopy(t *testing.T) {
	storage := NewInMemoryStorage()
	ctx := context.Background()

	require.NoError(t, storage.Save(ctx, "tags", []byte("abc")))

	data, err := storage.Load(ctx, "tags")
	require.NoError(t, err)
	data[0] = 'x'

	again, err := storage.Load(ctx, "tags")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}
