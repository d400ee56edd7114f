package main

import (
	"time"

	"cafe-platform/config"
	"cafe-platform/database"
	routes "cafe-platform/internal/app/http"
	"cafe-platform/internal/app/http/middleware"
	"cafe-platform/internal/logger"

	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	cleanup := logger.Init(config.LOG_LEVEL, config.LOG_JSON, config.LOG_FILE)
	defer cleanup()

	database.InitDB(config.DB_URL)

	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(logger.L))
	r.Use(ginzap.RecoveryWithZap(logger.L, true))
	r.Use(middleware.Metrics())
	r.Use(middleware.MaxBodyBytes(10 << 20))
	r.Use(middleware.RateLimitPerIP(rate.Limit(config.RATE_LIMIT_RPS), config.RATE_LIMIT_BURST))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CLIENT_URL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Webhook-Signature"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	logger.L.Info("server starting", zap.String("port", config.PORT))
	if err := r.Run(":" + config.PORT); err != nil {
		logger.L.Fatal("server exited", zap.Error(err))
	}
}
