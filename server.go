package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"waste-report-server/config"
	"waste-report-server/database"
	"waste-report-server/jobs"
	"waste-report-server/middleware"
	"waste-report-server/routes"
	"waste-report-server/services"
	ws "waste-report-server/websocket"
)

func serve() error {
	cfg := config.AppConfig

	if cfg.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Initialize(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	complaintRepo := database.NewComplaintRepository(db)
	workerRepo := database.NewWorkerRepository(db)
	panchayatRepo := database.NewPanchayatRepository(db)

	var photos services.PhotoStore
	store, err := services.NewCloudinaryStore(cfg.Cloudinary)
	if err != nil {
		return fmt.Errorf("failed to configure photo storage: %w", err)
	}
	if store != nil {
		photos = store
		log.Println("📸 Cloudinary photo storage enabled")
	} else {
		log.Println("⚠️ Cloudinary not configured, complaints are stored without photos")
	}

	hub := ws.NewHub()
	go hub.Run(ctx)

	var events services.EventPublisher = hub
	if cfg.Redis.URL != "" {
		client, err := ws.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			return err
		}
		defer client.Close()
		events = ws.NewRedisPublisher(client, cfg.Redis.Channel)
		ws.StartRedisRelay(ctx, client, cfg.Redis.Channel, hub)
	}

	complaintService := services.NewComplaintService(complaintRepo, workerRepo, photos, events, cfg.Photos)
	limiter := middleware.DefaultRateLimiter
	limiter.StartCleanup(ctx, 10*time.Minute)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	routes.RegisterRoutes(router, routes.Dependencies{
		Config:      cfg,
		Complaints:  complaintService,
		Leaderboard: services.NewLeaderboardService(panchayatRepo),
		Auth:        services.NewAuthService(cfg.Admin, workerRepo),
		Hub:         hub,
		RateLimiter: limiter,
	})

	overdueJob := jobs.NewOverdueJob(complaintService, cfg.Jobs.OverdueCheckInterval)
	overdueJob.Start()
	defer overdueJob.Stop()

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("🚀 Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-ctx.Done():
	}

	log.Println("🛑 Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
