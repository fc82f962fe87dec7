package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/qrvault/qrvault-backend/auth/middleware"
	"github.com/qrvault/qrvault-backend/config"
	"github.com/qrvault/qrvault-backend/handlers"
)

// Register mounts every route on the engine. The resolver for public
// lookup codes runs as the NoRoute fallback so it cannot shadow the named
// routes or the static asset mounts.
func Register(r *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	secret := []byte(cfg.JWTSecret)

	r.GET("/", middleware.LandingAuth(secret), h.Landing)
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)

	authed := r.Group("/")
	authed.Use(middleware.RequireAuth(secret, h.Logger))

	authed.GET("/dashboard", h.Dashboard)
	authed.GET("/myqr", h.MyQR)
	authed.POST("/generate", h.Generate)
	authed.PUT("/update/:code", h.Update)
	authed.DELETE("/delete/:id", h.Delete)

	// Asset areas are public, mounted under their relative dir names so the
	// paths stored on records double as public URL paths.
	r.Static("/"+cfg.UploadDir, cfg.UploadDir)
	r.Static("/"+cfg.QRImageDir, cfg.QRImageDir)
	r.Static("/"+cfg.LogoDir, cfg.LogoDir)

	r.NoRoute(h.Resolve)
}
