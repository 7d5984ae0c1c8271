package repository_test

import (
	"context"
	"errors"
	"testing"
	"toDoBoard/internal/domain/tag/tagmodels"
	"toDoBoard/internal/domain/task/taskmodels"
	"toDoBoard/internal/domain/user/usermodels"
	"toDoBoard/internal/repository"
	"toDoBoard/internal/repository/inmemory"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingBlobs struct {
	err error
}

func (f failingBlobs) Load(context.Context, string) ([]byte, error) {
	return nil, f.err
}

func (f failingBlobs) Save(context.Context, string, []byte) error {
	return f.err
}

func TestStorage_AbsentCollectionsAreEmpty(t *testing.T) {
	s := repository.NewStorage(inmemory.NewInMemoryStorage())
	ctx := context.Background()

	users, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	tags, err := s.LoadTags(ctx)
	require.NoError(t, err)
	assert.NotNil(t, tags)
	assert.Empty(t, tags)

	tasks, err := s.LoadTasks(ctx)
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestStorage_RoundTrip(t *testing.T) {
	s := repository.NewStorage(inmemory.NewInMemoryStorage())
	ctx := context.Background()
	tagID := 1

	users := []usermodels.User{{ID: 1, Name: "Al"}}
	tags := []tagmodels.Tag{{ID: 1, Name: "home"}}
	tasks := []taskmodels.Task{{ID: 1, Title: "t", UserID: 1, TagID: &tagID}}

	require.NoError(t, s.SaveUsers(ctx, users))
	require.NoError(t, s.SaveTags(ctx, tags))
	require.NoError(t, s.SaveTasks(ctx, tasks))

	gotUsers, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, gotUsers)

	gotTags, err := s.LoadTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, tags, gotTags)

	gotTasks, err := s.LoadTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, tasks, gotTasks)
}

func TestStorage_PrettyPrintedBlobs(t *testing.T) {
	blobs := inmemory.NewInMemoryStorage()
	s := repository.NewStorage(blobs)
	ctx := context.Background()
	tagID := 1

	require.NoError(t, s.SaveUsers(ctx, []usermodels.User{{ID: 1, Name: "Al"}, {ID: 2, Name: "Bo"}}))
	require.NoError(t, s.SaveTasks(ctx, []taskmodels.Task{
		{ID: 1, Title: "buy milk", UserID: 1},
		{ID: 2, Title: "ship release", UserID: 2, TagID: &tagID, Completed: true},
	}))

	g := goldie.New(t)

	usersBlob, err := blobs.Load(ctx, repository.UsersCollection)
	require.NoError(t, err)
	g.Assert(t, "users", usersBlob)

	tasksBlob, err := blobs.Load(ctx, repository.TasksCollection)
	require.NoError(t, err)
	g.Assert(t, "tasks", tasksBlob)
}

func TestStorage_SaveNilWritesEmptyArray(t *testing.T) {
	blobs := inmemory.NewInMemoryStorage()
	s := repository.NewStorage(blobs)
	ctx := context.Background()

	require.NoError(t, s.SaveTags(ctx, nil))

	data, err := blobs.Load(ctx, repository.TagsCollection)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestStorage_Errors(t *testing.T) {
	ctx := context.Background()
	ioErr := errors.New("disk on fire")
	s := repository.NewStorage(failingBlobs{err: ioErr})

	_, err := s.LoadUsers(ctx)
	require.ErrorIs(t, err, ioErr)
	assert.Contains(t, err.Error(), "load users")

	err = s.SaveTasks(ctx, []taskmodels.Task{})
	require.ErrorIs(t, err, ioErr)
	assert.Contains(t, err.Error(), "save tasks")
}

func TestStorage_CorruptBlob(t *testing.T) {
	blobs := inmemory.NewInMemoryStorage()
	s := repository.NewStorage(blobs)
	ctx := context.Background()

	require.NoError(t, blobs.Save(ctx, repository.UsersCollection, []byte("{not json")))

	_, err := s.LoadUsers(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode users")
}

func TestStorage_NullBlobIsEmpty(t *testing.T) {
	blobs := inmemory.NewInMemoryStorage()
	s := repository.NewStorage(blobs)
	ctx := context.Background()

	require.NoError(t, blobs.Save(ctx, repository.TagsCollection, []byte("null")))

	tags, err := s.LoadTags(ctx)
	require.NoError(t, err)
	assert.NotNil(t, tags)
	assert.Empty(t, tags)
}
