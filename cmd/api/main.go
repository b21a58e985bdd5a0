package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mm6683/Bpost-Tracker/internal/core/config"
	"github.com/mm6683/Bpost-Tracker/internal/core/httpclient"
	"github.com/mm6683/Bpost-Tracker/internal/core/logger"
	"github.com/mm6683/Bpost-Tracker/internal/core/server"
	cardhandler "github.com/mm6683/Bpost-Tracker/internal/features/card/handler"
	previewadapter "github.com/mm6683/Bpost-Tracker/internal/features/preview/adapters"
	previewhandler "github.com/mm6683/Bpost-Tracker/internal/features/preview/handler"
	previewservice "github.com/mm6683/Bpost-Tracker/internal/features/preview/service"
	proxyhandler "github.com/mm6683/Bpost-Tracker/internal/features/proxy/handler"
	proxyservice "github.com/mm6683/Bpost-Tracker/internal/features/proxy/service"
	trackingadapter "github.com/mm6683/Bpost-Tracker/internal/features/tracking/adapters"
	trackingservice "github.com/mm6683/Bpost-Tracker/internal/features/tracking/service"

	"go.uber.org/zap"
)

// @title bpost tracker edge API
// @version 1.0
// @description Edge service for the bpost parcel tracker: relays tracking API calls past CORS, injects social preview metadata into the homepage, and renders shareable SVG status cards.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("allowed_origin", cfg.Upstream.AllowedOrigin),
		zap.String("static_dir", cfg.Static.Dir),
	)

	client := httpclient.NewClient(cfg.Upstream.Timeout())

	// Initialize Tracking Service (shared by preview and card)
	bpostAdapter := trackingadapter.NewBpostAdapter(cfg.Upstream.AllowedOrigin, client)
	trackingSvc := trackingservice.NewTrackingService(bpostAdapter)

	// Initialize Handlers
	proxyHdl := proxyhandler.NewProxyHandler(
		proxyservice.NewProxyService(cfg.Upstream.AllowedOrigin, client),
	)
	previewHdl := previewhandler.NewPreviewHandler(
		previewservice.NewPreviewService(previewadapter.NewFSSource(cfg.Static.Dir)),
		trackingSvc,
	)
	cardHdl := cardhandler.NewCardHandler(trackingSvc)

	srv := server.New(cfg)

	// Register Routes. The static fallback goes last so it only sees paths
	// no feature route claimed.
	srv.App.All("/proxy", proxyHdl.Relay)
	srv.App.Get("/og.svg", cardHdl.Render)
	srv.App.Get("/", previewHdl.Render)
	srv.App.Get("/index.html", previewHdl.Render)
	srv.App.Static("/", cfg.Static.Dir)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		l.Info("Shutting down")
		if err := srv.App.Shutdown(); err != nil {
			l.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
