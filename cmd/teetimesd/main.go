/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mikeb26/teetimes/ephemeris"
	"github.com/mikeb26/teetimes/internal"
	"github.com/mikeb26/teetimes/internal/config"
	"github.com/mikeb26/teetimes/server"
)

func main() {
	cfgPath := flag.String("config", "", "config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "teetimesd: %v\n", err)
		os.Exit(1)
	}
	logger, err := internal.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "teetimesd: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT,
		syscall.SIGTERM)
	defer stop()

	sun := ephemeris.NewClient(ctx,
		ephemeris.WithBaseURL(cfg.Ephemeris.BaseURL),
		ephemeris.WithCacheBucket(cfg.Cache.Bucket),
		ephemeris.WithLogger(logger))

	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.New(server.Options{
			Logger:         logger,
			Sun:            sun,
			DefaultArea:    cfg.Ephemeris.DefaultArea,
			MaxUploadBytes: cfg.Server.MaxUploadBytes,
		}).Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("teetimesd.main: starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("teetimesd.main: serve failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("teetimesd.main: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("teetimesd.main: shutdown failed", zap.Error(err))
	}
}
