package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"toDoBoard/internal"
	"toDoBoard/internal/domain/ids"
	"toDoBoard/internal/domain/tag/tagmodels"
	"toDoBoard/internal/domain/task/taskmodels"
	"toDoBoard/internal/domain/user/usermodels"
	"toDoBoard/internal/server/middleware"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type UserStorage interface {
	LoadUsers(ctx context.Context) ([]usermodels.User, error)
	SaveUsers(ctx context.Context, users []usermodels.User) error
}

type TagStorage interface {
	LoadTags(ctx context.Context) ([]tagmodels.Tag, error)
	SaveTags(ctx context.Context, tags []tagmodels.Tag) error
}

type TaskStorage interface {
	LoadTasks(ctx context.Context) ([]taskmodels.Task, error)
	SaveTasks(ctx context.Context, tasks []taskmodels.Task) error
}

type Storage interface {
	UserStorage
	TagStorage
	TaskStorage
}

const errInternal = "internal server error"

type ToDoBoardAPI struct {
	srv      *http.Server
	db       Storage
	idPolicy ids.Policy
	log      zerolog.Logger
}

func NewServer(cfg internal.Config, db Storage, log zerolog.Logger) *ToDoBoardAPI {
	HTTPSrv := http.Server{ //nolint:gocritic // Линтеры противоречат друг другу, оставил так
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		ReadHeaderTimeout: internal.SecFive,
	}

	api := ToDoBoardAPI{
		srv:      &HTTPSrv,
		db:       db,
		idPolicy: ids.ParsePolicy(cfg.IDPolicy),
		log:      log,
	}

	api.configRouter()

	return &api
}

func (api *ToDoBoardAPI) Run() error {
	return api.srv.ListenAndServe()
}

func (api *ToDoBoardAPI) ShutDown(ctx context.Context) error {
	return api.srv.Shutdown(ctx)
}

func (api *ToDoBoardAPI) Handler() http.Handler {
	return api.srv.Handler
}

func (api *ToDoBoardAPI) configRouter() {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(api.log))
	router.Use(middleware.GzipDecompressMiddleware())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	users := router.Group("/users")
	{
		users.GET("", api.getAllUsers)
		users.GET("/:id", api.getUserByID)
		users.GET("/:id/tasks", api.getUserTasks)
		users.POST("", api.createUser)
		users.PUT("/:id", api.updateUser)
		users.DELETE("/:id", api.deleteUser)
	}

	tags := router.Group("/tags")
	{
		tags.GET("", api.getAllTags)
		tags.GET("/:id", api.getTagByID)
		tags.POST("", api.createTag)
		tags.PUT("/:id", api.updateTag)
		tags.DELETE("/:id", api.deleteTag)
	}

	tasks := router.Group("/tasks")
	{
		tasks.GET("", api.getTasks)
		tasks.GET("/:id", api.getTaskByID)
		tasks.POST("", api.createTask)
		tasks.PUT("/:id", api.updateTask)
		tasks.DELETE("/:id", api.deleteTask)
	}

	api.srv.Handler = router
}

// paramID - id из пути. Нечисловой id не совпадает ни с одной записью.
func paramID(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// bindBody разбирает JSON тела; пустое тело считается пустым объектом.
func bindBody(ctx *gin.Context, obj any) error {
	if err := ctx.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (api *ToDoBoardAPI) internalError(ctx *gin.Context, err error) {
	api.log.Error().Err(err).Str("route", ctx.FullPath()).Msg("storage failure")
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
}
