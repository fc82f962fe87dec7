package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/qrvault/qrvault-backend/auth/middleware"
)

// Landing renders the public landing page. Authenticated callers never get
// here; the landing middleware redirects them to the dashboard.
func (h *Handler) Landing(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// Dashboard shows the caller's QR codes.
func (h *Handler) Dashboard(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	qrCodes, err := h.QRs.ListByOwner(userID)
	if err != nil {
		h.Logger.WithError(err).Error("failed to list qr codes")
		respondError(c, http.StatusInternalServerError, "An error occurred while fetching your QR codes.")
		return
	}

	message := "Welcome! Here are your QR codes."
	if len(qrCodes) == 0 {
		message = "No QR codes found."
	}

	if wantsHTML(c) {
		c.HTML(http.StatusOK, "dashboard.html", gin.H{
			"qrCodes": qrCodes,
			"message": message,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"qrCodes": qrCodes, "message": message})
}

// MyQR lists the caller's QR codes, newest first.
func (h *Handler) MyQR(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	qrCodes, err := h.QRs.ListByOwner(userID)
	if err != nil {
		h.Logger.WithError(err).Error("failed to list qr codes")
		respondError(c, http.StatusInternalServerError, "An error occurred while fetching your QR codes.")
		return
	}

	if wantsHTML(c) {
		c.HTML(http.StatusOK, "myqr.html", gin.H{"qrCodes": qrCodes})
		return
	}
	c.JSON(http.StatusOK, gin.H{"qrCodes": qrCodes})
}
