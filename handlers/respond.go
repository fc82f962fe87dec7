package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/qrvault/qrvault-backend/assets"
	"github.com/qrvault/qrvault-backend/config"
	"github.com/qrvault/qrvault-backend/stores"
)

// Handler carries the injected dependencies for all request handlers.
type Handler struct {
	Users  *stores.UserStore
	QRs    *stores.QRStore
	Assets *assets.Store
	Cfg    *config.Config
	Logger *logrus.Logger
}

func New(users *stores.UserStore, qrs *stores.QRStore, as *assets.Store, cfg *config.Config, logger *logrus.Logger) *Handler {
	return &Handler{Users: users, QRs: qrs, Assets: as, Cfg: cfg, Logger: logger}
}

// wantsHTML reports whether the caller prefers a rendered page over JSON.
func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

// respondError answers with the negotiated error body: a rendered error page
// for browsers, {message, type:"error"} JSON for API clients.
func respondError(c *gin.Context, status int, message string) {
	if wantsHTML(c) {
		c.HTML(status, "error.html", gin.H{"message": message, "type": "error"})
		return
	}
	c.JSON(status, gin.H{"message": message, "type": "error"})
}
