package routes

import (
	"SocialMedia/middleware"
	"SocialMedia/pkg/config"
	"SocialMedia/pkg/services"
	"SocialMedia/pkg/storage"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	accountRoutes "SocialMedia/routes/account"
	messageRoutes "SocialMedia/routes/message"
)

// RegisterRoutes wires stores, services and handlers onto r. The returned
// func releases the rate limiter's background janitor.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Settings, log logrus.FieldLogger) (cleanup func()) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	metrics := middleware.NewMetrics(reg)

	r.Use(middleware.RequestLogger(log), metrics.Middleware())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "social media backend running"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	accountStore := storage.NewAccountStore(db, log)
	messageStore := storage.NewMessageStore(db, log)
	accountService := services.NewAccountService(accountStore, log)
	messageService := services.NewMessageService(messageStore, accountStore, log)

	limiter := middleware.NewRateLimiter(cfg.RateLimitWindow, cfg.RateLimitCapacity, cfg.RateLimitMaxKeys)

	accountRoutes.Register(r, accountService, limiter.Middleware())
	messageRoutes.Register(r, messageService, limiter.Middleware())

	return limiter.Close
}
