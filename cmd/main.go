package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	httpctx "github.com/dtroode/tasktracker-server/internal/api/http/context"
	"github.com/dtroode/tasktracker-server/internal/api/http/router"
	httpServer "github.com/dtroode/tasktracker-server/internal/api/http/server"
	"github.com/dtroode/tasktracker-server/internal/config"
	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
	"github.com/dtroode/tasktracker-server/internal/password"
	"github.com/dtroode/tasktracker-server/internal/repository/memory"
	"github.com/dtroode/tasktracker-server/internal/repository/postgres"
	"github.com/dtroode/tasktracker-server/internal/server"
	"github.com/dtroode/tasktracker-server/internal/service"
	"github.com/dtroode/tasktracker-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

// storage bundles the stores of the selected driver.
type storage struct {
	users model.UserStore
	tasks model.TaskStore
	db    interface {
		Ping(ctx context.Context) error
		Close() error
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger, err := logger.NewWithOptions(cfg.LogLevel, logger.Options{
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}

	store, err := openStorage(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err, "driver", cfg.Database.Driver)
	}
	defer store.db.Close()

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	tokenService := service.NewTokenService(tokenManager, logger)

	authService, err := service.NewAuth(store.users, password.NewBcrypt(cfg.PasswordCost), tokenService, logger)
	if err != nil {
		logger.Fatal("failed to initialize auth service", "error", err)
	}
	taskService := service.NewTask(store.tasks, logger)
	ctxMgr := httpctx.NewManager()

	app := router.New(authService, taskService, tokenService, store.db, ctxMgr, logger, cfg.HTTP.BodyLimit).Register()
	apiServer := httpServer.NewHTTPServer(app, fmt.Sprintf(":%s", cfg.HTTP.Port))

	sl := server.NewSecurityLayer(cfg.HTTP)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(apiServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := apiServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", apiServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func openStorage(ctx context.Context, cfg config.Database) (*storage, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		s := memory.NewStore()
		return &storage{users: s, tasks: s.Tasks(), db: s}, nil
	default:
		db, err := postgres.NewConnection(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &storage{
			users: postgres.NewUserRepository(db),
			tasks: postgres.NewTaskRepository(db),
			db:    db,
		}, nil
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
