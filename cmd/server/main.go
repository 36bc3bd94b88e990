package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/todolite/backend/api/handler"
	"github.com/todolite/backend/internal/config"
	"github.com/todolite/backend/internal/infrastructure/monitor"
	"github.com/todolite/backend/internal/infrastructure/sqlstore"
	"github.com/todolite/backend/internal/middleware"
	"github.com/todolite/backend/internal/router"
	"github.com/todolite/backend/internal/services/lifecycle"
	"github.com/todolite/backend/pkg/httpcontext"
	"github.com/todolite/backend/pkg/logger"
	repoSQL "github.com/todolite/backend/repository/sqlstore"
	todoUC "github.com/todolite/backend/usecase/todo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	db, dialect, err := sqlstore.Open(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("store connection failed", zap.Error(err))
	}
	manager.Register("store", func(ctx context.Context) error {
		return db.Close()
	})

	if err := sqlstore.RunMigrations(cfg, db, dialect, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	mon := monitor.New(db, cfg.Monitor.Interval, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	todoRepo := repoSQL.NewTodoRepository(db)
	todoUseCase := todoUC.New(todoRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Todo:   apiHandler.NewTodoHandler(todoUseCase, ctxAdapter, zapLogger),
		Health: apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	r := router.New(handlers, middleware.AccessLog(zapLogger))

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
