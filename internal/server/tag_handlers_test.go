package server

import (
	"net/http"
	"testing"
	"toDoBoard/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagHandlers(t *testing.T) {
	type want struct {
		body       string
		statusCode int
	}

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   want
	}{
		{
			name:   "List tags",
			method: http.MethodGet,
			path:   "/tags",
			want:   want{`[{"id":1,"name":"home"},{"id":2,"name":"work"}]`, http.StatusOK},
		},
		{
			name:   "Get tag",
			method: http.MethodGet,
			path:   "/tags/2",
			want:   want{`{"id":2,"name":"work"}`, http.StatusOK},
		},
		{
			name:   "Get missing tag",
			method: http.MethodGet,
			path:   "/tags/3",
			want:   want{`{"error":"tag not found"}`, http.StatusNotFound},
		},
		{
			name:   "Create tag",
			method: http.MethodPost,
			path:   "/tags",
			body:   `{"name":"errands"}`,
			want:   want{`{"id":3,"name":"errands"}`, http.StatusCreated},
		},
		{
			name:   "Create tag without name",
			method: http.MethodPost,
			path:   "/tags",
			body:   `{}`,
			want:   want{`{"error":"name is required"}`, http.StatusBadRequest},
		},
		{
			name:   "Rename tag",
			method: http.MethodPut,
			path:   "/tags/1",
			body:   `{"name":"house"}`,
			want:   want{`{"id":1,"name":"house"}`, http.StatusOK},
		},
		{
			name:   "Empty name keeps tag",
			method: http.MethodPut,
			path:   "/tags/1",
			body:   `{"name":""}`,
			want:   want{`{"id":1,"name":"home"}`, http.StatusOK},
		},
		{
			name:   "Update missing tag",
			method: http.MethodPut,
			path:   "/tags/7",
			body:   `{"name":"x"}`,
			want:   want{`{"error":"tag not found"}`, http.StatusNotFound},
		},
		{
			name:   "Delete tag",
			method: http.MethodDelete,
			path:   "/tags/1",
			want:   want{`{"message":"tag deleted"}`, http.StatusOK},
		},
		{
			name:   "Delete missing tag",
			method: http.MethodDelete,
			path:   "/tags/42",
			want:   want{`{"message":"tag deleted"}`, http.StatusOK},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			board := newTestBoard(t)
			board.seed(t, repository.TagsCollection, `[{"id":1,"name":"home"},{"id":2,"name":"work"}]`)

			res := board.do(t, tc.method, tc.path, tc.body)

			assert.Equal(t, tc.want.statusCode, res.StatusCode())
			assert.JSONEq(t, tc.want.body, string(res.Body()))
		})
	}
}

func TestDeleteTag_Idempotent(t *testing.T) {
	board := newTestBoard(t)
	board.seed(t, repository.TagsCollection, `[{"id":1,"name":"home"},{"id":2,"name":"work"}]`)

	res := board.do(t, http.MethodDelete, "/tags/1", "")
	require.Equal(t, http.StatusOK, res.StatusCode())
	after := board.blob(t, repository.TagsCollection)

	res = board.do(t, http.MethodDelete, "/tags/1", "")
	require.Equal(t, http.StatusOK, res.StatusCode())
	assert.JSONEq(t, `{"message":"tag deleted"}`, string(res.Body()))
	assert.Equal(t, after, board.blob(t, repository.TagsCollection))
}

func TestDeleteTag_LeavesDanglingTaskReference(t *testing.T) {
	board := newTestBoard(t)
	board.seed(t, repository.UsersCollection, `[{"id":1,"name":"Al"}]`)
	board.seed(t, repository.TagsCollection, `[{"id":1,"name":"home"}]`)
	board.seed(t, repository.TasksCollection, `[{"id":1,"title":"t","id_user":1,"id_tag":1,"completed":false}]`)

	res := board.do(t, http.MethodDelete, "/tags/1", "")
	require.Equal(t, http.StatusOK, res.StatusCode())

	res = board.do(t, http.MethodGet, "/tasks", "")
	assert.JSONEq(t,
		`[{"id":1,"title":"t","id_user":1,"id_tag":1,"completed":false,"user_name":"Al","tag_name":"no tag"}]`,
		string(res.Body()),
	)
}
