// Package main provides the sdxlgen HTTP service.
//
// The server exposes POST /generate-image/ backed by the Stability AI
// text-to-image engine. Configuration comes from the environment:
//
//	STABILITY_KEY      provider API key; when unset the server starts
//	                   anyway and generation requests answer with
//	                   client_not_initialized
//	STABILITY_HOST     override the provider host
//	PORT               listen port (default 8080)
//	SDXLGEN_OUTPUT_DIR directory for generated PNG files (default ".")
//	SDXLGEN_DEBUG      enable debug logging and gin debug mode
//
// A .env file in the working directory is loaded at startup when present.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/bitfold/sdxlgen/pkg/imagegen"
	"github.com/bitfold/sdxlgen/pkg/server"
	"github.com/bitfold/sdxlgen/pkg/stability"
)

func main() {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			slog.Error("failed to load .env file", slog.Any("error", err))
		}
	}

	debug := os.Getenv("SDXLGEN_DEBUG") != ""
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	handle := buildHandle(log)
	router := server.NewRouter(handle, log)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Info("listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	stop()

	log.Info("shutting down")
	// Drain without a deadline: in-flight generations are never cancelled.
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
	}
}

// buildHandle wires the generator when a credential is present. A missing
// STABILITY_KEY is not fatal: the server starts and reports
// client_not_initialized on generation requests.
func buildHandle(log *slog.Logger) *server.Handle {
	apiKey := os.Getenv("STABILITY_KEY")
	if apiKey == "" {
		log.Warn("STABILITY_KEY is not set, image generation is disabled")
		return server.NewHandle(nil)
	}

	var opts []stability.Option
	if host := os.Getenv("STABILITY_HOST"); host != "" {
		opts = append(opts, stability.WithHost(host))
	}
	client, err := stability.NewClient(apiKey, opts...)
	if err != nil {
		log.Warn("provider client not initialized", slog.Any("error", err))
		return server.NewHandle(nil)
	}

	dir := os.Getenv("SDXLGEN_OUTPUT_DIR")
	if dir == "" {
		dir = "."
	}
	log.Info("provider client ready",
		slog.String("host", client.Host()),
		slog.String("engine", client.Engine()),
		slog.String("output_dir", dir),
	)
	return server.NewHandle(imagegen.New(client, imagegen.WithDir(dir)))
}
