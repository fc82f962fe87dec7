package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/qrvault/qrvault-backend/models"
	"github.com/qrvault/qrvault-backend/stores"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

// Resolve is the public scan endpoint, mounted as the router's NoRoute
// fallback. A path that looks like a lookup code is dispatched by variant;
// anything else is a plain 404.
func (h *Handler) Resolve(c *gin.Context) {
	code := strings.Trim(c.Request.URL.Path, "/")
	if !codePattern.MatchString(code) {
		respondError(c, http.StatusNotFound, "Page not found")
		return
	}

	qr, err := h.QRs.FindByCode(code)
	if err != nil {
		if errors.Is(err, stores.ErrQRNotFound) {
			respondError(c, http.StatusNotFound, "QR Code not found")
			return
		}
		h.Logger.WithError(err).Error("failed to resolve qr code")
		respondError(c, http.StatusInternalServerError, "An error occurred resolving this code")
		return
	}

	switch qr.Type {
	case models.TypeURL:
		c.Redirect(http.StatusFound, qr.URL)
	case models.TypeMedia:
		// Stored media paths keep the original upload filename, which may
		// contain spaces or non-ASCII; the Location header needs escaping.
		loc := url.URL{Path: "/" + filepath.ToSlash(qr.MediaPath)}
		c.Redirect(http.StatusFound, loc.String())
	case models.TypeText:
		c.HTML(http.StatusOK, "text.html", gin.H{"text": qr.Text})
	default:
		// Unreachable through the lifecycle handlers; guards against
		// corrupted rows.
		h.Logger.WithField("code", code).WithField("type", qr.Type).Error("qr record has unknown type")
		respondError(c, http.StatusInternalServerError, "Invalid QR code type")
	}
}
