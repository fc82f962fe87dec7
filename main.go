package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/qrvault/qrvault-backend/assets"
	"github.com/qrvault/qrvault-backend/auth/middleware"
	"github.com/qrvault/qrvault-backend/config"
	"github.com/qrvault/qrvault-backend/handlers"
	"github.com/qrvault/qrvault-backend/initializers"
	"github.com/qrvault/qrvault-backend/routes"
	"github.com/qrvault/qrvault-backend/stores"
)

func newLogger(env string) *logrus.Logger {
	logger := logrus.New()
	if env == "development" {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}

func main() {
	cfg := config.Load()
	logger := newLogger(cfg.Env)

	db := initializers.ConnectToDatabase(cfg.DBURL)

	assetStore, err := assets.NewStore(cfg.UploadDir, cfg.QRImageDir, cfg.LogoDir, logger)
	if err != nil {
		log.Fatalf("❌ Failed to prepare asset directories: %v", err)
	}

	h := handlers.New(
		stores.NewUserStore(db),
		stores.NewQRStore(db),
		assetStore,
		cfg,
		logger,
	)

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RateLimit(rate.Every(1*time.Second), 5))

	router.LoadHTMLGlob("templates/*.html")
	routes.Register(router, h, cfg)

	logger.WithField("port", cfg.Port).Info("starting server")
	log.Fatal(router.Run(":" + cfg.Port))
}
