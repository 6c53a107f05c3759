// Command api runs the person HTTP API.
//
// Startup order:
//  1. load config from env (with defaults, so zero env works)
//  2. build the application logger
//  3. build the Server container and the Echo router
//  4. serve until SIGINT/SIGTERM, then shut down gracefully
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/person-api/internal/config"
	"github.com/deppfellow/person-api/internal/handler"
	"github.com/deppfellow/person-api/internal/logger"
	"github.com/deppfellow/person-api/internal/middleware"
	"github.com/deppfellow/person-api/internal/router"
	"github.com/deppfellow/person-api/internal/server"
)

// shutdownTimeout bounds how long in-flight requests may take to drain.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// config.Load logs fatally on its own; this is belt and suspenders.
		os.Exit(1)
	}

	log := logger.New(cfg)

	srv := server.New(cfg, log)

	middlewares := middleware.NewMiddlewares(srv)
	handlers := handler.NewHandlers(srv)

	r := router.New(handlers, middlewares)
	srv.SetupHTTPServer(r)

	// Run the listener in its own goroutine so main can block on signals.
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
			os.Exit(1)
		}

		log.Info().Msg("server stopped")
	}
}
