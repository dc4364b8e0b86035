// Command api runs the resource-api HTTP server.
//
// Wiring order: config -> logger -> server container (DynamoDB stores) ->
// services -> handlers -> middlewares -> router -> http.Server. The server
// then runs until SIGINT/SIGTERM and shuts down gracefully.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/resource-api/internal/config"
	"github.com/deppfellow/resource-api/internal/handler"
	"github.com/deppfellow/resource-api/internal/logger"
	"github.com/deppfellow/resource-api/internal/middleware"
	"github.com/deppfellow/resource-api/internal/router"
	"github.com/deppfellow/resource-api/internal/server"
	"github.com/deppfellow/resource-api/internal/service"
)

// shutdownTimeout bounds how long inflight requests may run after a
// shutdown signal before the process exits anyway.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.New(cfg)

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	services := service.NewServices(srv, srv.Stores)
	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	srv.SetupHTTPServer(router.New(handlers, middlewares))

	// Run the listener in the background so main can wait on signals.
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		// ErrServerClosed is the normal result of Shutdown, anything else
		// means the listener died on its own.
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}

	log.Info().Msg("server stopped")
}
