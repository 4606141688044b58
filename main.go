package main

import (
	"SocialMedia/pkg/config"
	"SocialMedia/pkg/database"
	"SocialMedia/pkg/logger"
	"SocialMedia/routes"
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logg := logger.New(cfg.LogLevel, cfg.LogFormat)
	logg.WithFields(logrus.Fields{
		"app_env":  cfg.AppEnv,
		"driver":   cfg.DBDriver,
		"port":     cfg.Port,
		"rl_cap":   cfg.RateLimitCapacity,
		"rl_win_s": cfg.RateLimitWindow.Seconds(),
	}).Info("[config] loaded")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg, logg)
	if err != nil {
		logg.Fatalf("failed to connect database: %v", err)
	}
	defer database.Close(db)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// auto-migrate
	if err := database.Migrate(ctx, db); err != nil {
		logg.Fatalf("failed migrate: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	cleanup := routes.RegisterRoutes(r, db, cfg, logg)
	defer cleanup()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
	go func() {
		logg.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Errorf("server: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Errorf("shutdown: %v", err)
	}
	logg.Info("server stopped")
}
