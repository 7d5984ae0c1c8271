package server

import (
	"context"
	"net/http/httptest"
	"testing"
	"toDoBoard/internal"
	"toDoBoard/internal/repository"
	"toDoBoard/internal/repository/inmemory"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type testBoard struct {
	blobs  *inmemory.Storage
	client *resty.Client
}

func newTestBoard(t *testing.T) *testBoard {
	t.Helper()
	gin.SetMode(gin.ReleaseMode)

	blobs := inmemory.NewInMemoryStorage()
	api := NewServer(internal.Config{IDPolicy: "length"}, repository.NewStorage(blobs), zerolog.Nop())

	httpSrv := httptest.NewServer(api.Handler())
	t.Cleanup(httpSrv.Close)

	client := resty.New().
		SetBaseURL(httpSrv.URL).
		SetHeader("Content-Type", "application/json")

	return &testBoard{blobs: blobs, client: client}
}

// seed кладёт blob коллекции напрямую, минуя API.
func (b *testBoard) seed(t *testing.T, name, data string) {
	t.Helper()
	require.NoError(t, b.blobs.Save(context.Background(), name, []byte(data)))
}

func (b *testBoard) blob(t *testing.T, name string) string {
	t.Helper()
	data, err := b.blobs.Load(context.Background(), name)
	require.NoError(t, err)
	return string(data)
}

func (b *testBoard) do(t *testing.T, method, path, body string) *resty.Response {
	t.Helper()
	req := b.client.R()
	if body != "" {
		req.SetBody(body)
	}
	res, err := req.Execute(method, path)
	require.NoError(t, err)
	return res
}
