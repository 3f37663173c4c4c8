package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	sqlitedb "taskmanager/internal/adapter/database/sqlite"
	sqliterepo "taskmanager/internal/adapter/database/sqlite/repository"

	postgresdb "taskmanager/internal/adapter/database/postgres"
	postgresrepo "taskmanager/internal/adapter/database/postgres/repository"

	"taskmanager/internal/adapter/http/routes"
	"taskmanager/internal/core/port"
	"taskmanager/pkg/config"
	"taskmanager/pkg/logger"
	"taskmanager/pkg/middleware"
	"taskmanager/pkg/telemetry"
)

// StartServer opens the configured database, wires the container and serves
// HTTP until ctx is cancelled.
func StartServer(ctx context.Context, cfg *config.Config, metrics *telemetry.AppMetrics, log *logger.AppLogger) error {
	userRepo, taskRepo, closeDB, err := openRepositories(ctx, cfg.Database)

	if err != nil {
		return err
	}

	defer closeDB()

	container := NewContainer(userRepo, taskRepo, cfg.JWT)

	limiter := middleware.NewRateLimiter(log.Logger.Logger, metrics)

	router := routes.SetupRouter(routes.HandlersConfig{
		AuthHandler: container.AuthHandler,
		UserHandler: container.UserHandler,
		TaskHandler: container.TaskHandler,
		JWT:         container.JWT,
	}, metrics, log, limiter)

	slog.Info("Server starting",
		"port", cfg.Port,
		"environment", cfg.Env,
		"database_driver", cfg.Database.Driver)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func openRepositories(ctx context.Context, cfg config.DatabaseConfig) (port.UserRepository, port.TaskRepository, func(), error) {
	switch cfg.Driver {
	case "postgres":
		db, err := postgresdb.NewDB(ctx, cfg.URL, cfg.MigrationsPath)

		if err != nil {
			return nil, nil, nil, err
		}

		return postgresrepo.NewUserRepository(db), postgresrepo.NewTaskRepository(db), db.Close, nil

	case "sqlite":
		db, err := sqlitedb.NewDB(cfg.Path, cfg.MigrationsPath)

		if err != nil {
			return nil, nil, nil, err
		}

		return sqliterepo.NewUserRepository(db), sqliterepo.NewTaskRepository(db), func() { db.Close() }, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
