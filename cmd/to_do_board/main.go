package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"toDoBoard/internal"
	"toDoBoard/internal/repository"
	"toDoBoard/internal/repository/db"
	"toDoBoard/internal/repository/filestore"
	"toDoBoard/internal/repository/inmemory"
	"toDoBoard/internal/repository/sqlite"
	"toDoBoard/internal/server"
	"toDoBoard/pkg/logger"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)
		defer signal.Stop(c)
		<-c
		cancel()
	}()

	cfg := internal.ReadConfig()

	log := logger.Init(cfg.Debug)
	log.Debug().Any("config", cfg).Send()

	log.Info().Msg("Server starting...")

	blobs, closeStore, err := openBlobStore(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to open storage")
		return
	}

	srv := server.NewServer(cfg, repository.NewStorage(blobs), log)

	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		// конфигурация и запуск веб-сервера
		if err := srv.Run(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				return
			}
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), internal.SecTen)
		defer shutdownCancel()
		if err := srv.ShutDown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shutdown server")
		}
		if err := closeStore(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to close storage")
		}
		log.Info().Msg("Server stopped")
	}()

	wg.Wait()
}

// openBlobStore выбирает хранилище: память, sqlite, postgres или файлы в data_dir.
// Если postgres недоступен, используем файлы.
func openBlobStore(cfg internal.Config, log zerolog.Logger) (repository.BlobStore, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	if cfg.Memory {
		log.Info().Msg("using in-memory storage")
		return inmemory.NewInMemoryStorage(), noop, nil
	}

	if cfg.SQLitePath != "" {
		store, err := sqlite.NewStorage(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("path", cfg.SQLitePath).Msg("using sqlite storage")
		return store, func(context.Context) error { return store.Close() }, nil
	}

	if cfg.DNS != "" {
		postgresDB, err := db.NewStorage(cfg.DNS)
		if err != nil {
			log.Err(err).Msg("Postgres недоступен, используем файловое хранилище")
		} else {
			// запуск миграции
			if err = db.Migrations(cfg.DNS, cfg.MigratePath); err != nil {
				return nil, nil, err
			}
			log.Info().Msg("using postgres storage")
			return postgresDB, postgresDB.Close, nil
		}
	}

	store, err := filestore.NewStorage(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Str("dir", cfg.DataDir).Msg("using file storage")
	return store, noop, nil
}
