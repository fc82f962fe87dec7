package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the app reads from the environment. Loaded once
// in main and passed down; nothing else touches os.Getenv.
type Config struct {
	Env     string
	Port    string
	BaseURL string // public origin encoded into QR images, e.g. https://qrvault.app

	DBURL string

	JWTSecret string
	TokenTTL  time.Duration

	CORSOrigin string

	UploadDir  string
	QRImageDir string
	LogoDir    string

	MaxMediaBytes int64
}

const DefaultMaxMediaBytes = 50 << 20 // 50 MiB

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

func getint64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

// Load reads the environment (and .env in development) into a Config.
func Load() *Config {
	if os.Getenv("RENDER") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found, using system environment variables")
		}
	}

	port := getenv("PORT", "8080")
	return &Config{
		Env:           getenv("APP_ENV", "development"),
		Port:          port,
		BaseURL:       getenv("APP_BASE_URL", "http://localhost:"+port),
		DBURL:         os.Getenv("DB_URL"),
		JWTSecret:     getenv("JWT_SECRET", "devsecret"),
		TokenTTL:      getdur("TOKEN_TTL", time.Hour),
		CORSOrigin:    getenv("CORS_ORIGIN", "http://localhost:3000"),
		UploadDir:     getenv("UPLOAD_DIR", "uploads"),
		QRImageDir:    getenv("QR_IMAGE_DIR", "qr_images"),
		LogoDir:       getenv("LOGO_DIR", "logos"),
		MaxMediaBytes: getint64("MAX_MEDIA_BYTES", DefaultMaxMediaBytes),
	}
}
