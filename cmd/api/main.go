// Command api serves the public site API and the back-office endpoints.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seifeddinerezgui/gethrought/internal/config"
	"github.com/seifeddinerezgui/gethrought/internal/logger"
	"github.com/seifeddinerezgui/gethrought/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	zl, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat, "gethrought-api")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("server failed to initialize", zap.Error(err))
	}
	defer func() {
		if err := srv.Close(); err != nil {
			zl.Error("failed to close resources", zap.Error(err))
		}
	}()

	httpServer := srv.NewServer()
	errChan := make(chan error, 1)
	go func() {
		zl.Info("listening", zap.String("addr", httpServer.Addr), zap.String("store", cfg.StoreDriver))
		errChan <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Error("server stopped unexpectedly", zap.Error(err))
		}
	case <-ctx.Done():
		zl.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			zl.Error("graceful shutdown failed", zap.Error(err))
		}
	}
}
