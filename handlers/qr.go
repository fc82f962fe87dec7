package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/qrvault/qrvault-backend/auth/middleware"
	"github.com/qrvault/qrvault-backend/models"
	"github.com/qrvault/qrvault-backend/qrgen"
	"github.com/qrvault/qrvault-backend/stores"
)

const codeRetries = 5

// qrContent is the validated variant payload of a generate/update form.
type qrContent struct {
	variant string
	url     string
	text    string
	media   *multipart.FileHeader
}

// readContent validates the variant-specific part of the multipart form.
// It writes the error response itself and reports ok=false on failure.
func (h *Handler) readContent(c *gin.Context) (qrContent, bool) {
	content := qrContent{variant: c.PostForm("type")}

	switch content.variant {
	case models.TypeMedia:
		fh, err := c.FormFile("media-file")
		if err != nil {
			respondError(c, http.StatusBadRequest, "Media file not attached")
			return content, false
		}
		if fh.Size > h.Cfg.MaxMediaBytes {
			respondError(c, http.StatusRequestEntityTooLarge, "Media file exceeds the 50 MiB limit")
			return content, false
		}
		content.media = fh
	case models.TypeText:
		content.text = c.PostForm("text")
		if content.text == "" {
			respondError(c, http.StatusBadRequest, "Text is missing")
			return content, false
		}
	case models.TypeURL:
		content.url = c.PostForm("url")
		if content.url == "" {
			respondError(c, http.StatusBadRequest, "Url is missing")
			return content, false
		}
		lower := strings.ToLower(content.url)
		if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
			respondError(c, http.StatusBadRequest, "Url must start with http:// or https://")
			return content, false
		}
	default:
		respondError(c, http.StatusBadRequest, "Invalid type")
		return content, false
	}
	return content, true
}

func styleFromForm(c *gin.Context, qr *models.QRCode) {
	qr.QRDotColor = c.PostForm("qrDotColor")
	qr.BackgroundColor = c.PostForm("backgroundColor")
	qr.DotStyle = c.PostForm("dotStyle")
	qr.CornerStyle = c.PostForm("cornerStyle")
	qr.ApplyGradient = c.PostForm("applyGradient")
}

// Generate creates a QR record plus its image asset, and stores any
// uploaded media and logo files.
func (h *Handler) Generate(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	qrName := c.PostForm("qrName")
	if qrName == "" {
		respondError(c, http.StatusBadRequest, "QR name is required")
		return
	}

	// The client generates the code candidate alongside its live preview;
	// a missing code means the form never ran.
	code := c.PostForm("code")
	if code == "" {
		respondError(c, http.StatusBadRequest, "Code is missing")
		return
	}
	code, err := h.ensureUniqueCode(code)
	if err != nil {
		h.Logger.WithError(err).Error("failed to allocate lookup code")
		respondError(c, http.StatusInternalServerError, "Error generating QR code.")
		return
	}

	content, ok := h.readContent(c)
	if !ok {
		return
	}

	qr := models.QRCode{
		UserID: userID,
		QRName: qrName,
		Code:   code,
	}
	styleFromForm(c, &qr)

	var payload string
	switch content.variant {
	case models.TypeMedia:
		payload, err = h.Assets.SaveUpload(content.media)
		if err != nil {
			h.Logger.WithError(err).Error("failed to store media upload")
			respondError(c, http.StatusInternalServerError, "Failed to save media file")
			return
		}
	case models.TypeText:
		payload = content.text
	case models.TypeURL:
		payload = content.url
	}
	qr.SetContent(content.variant, payload)

	if logo, err := c.FormFile("logo"); err == nil {
		logoPath, err := h.Assets.SaveLogo(logo)
		if err != nil {
			h.Logger.WithError(err).Error("failed to store logo")
			h.Assets.Remove(qr.MediaPath)
			respondError(c, http.StatusInternalServerError, "Failed to save logo file")
			return
		}
		qr.LogoPath = logoPath
	}

	qr.QRImage = h.Assets.NewQRImagePath()
	redirectURL := h.Cfg.BaseURL + "/" + code
	if err := qrgen.RenderImage(redirectURL, qr.QRDotColor, qr.BackgroundColor, qr.QRImage); err != nil {
		h.Logger.WithError(err).Error("failed to render qr image")
		h.Assets.Remove(qr.MediaPath)
		h.Assets.Remove(qr.LogoPath)
		respondError(c, http.StatusInternalServerError, "Error generating QR code.")
		return
	}

	if err := h.QRs.Create(&qr); err != nil {
		h.Logger.WithError(err).Error("failed to save qr record")
		h.Assets.Remove(qr.MediaPath)
		h.Assets.Remove(qr.LogoPath)
		h.Assets.Remove(qr.QRImage)
		respondError(c, http.StatusInternalServerError, "Error generating QR code.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "QR Code generated successfully.",
		"type":    "success",
		"qrCode":  qr,
	})
}

// Update rewrites content, styling and logo of an existing record. The
// lookup code and the rendered QR image stay as issued at create time; the
// image encodes only the redirect URL, which never changes.
func (h *Handler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)
	code := c.Param("code")

	qr, err := h.QRs.FindByCode(code)
	if err != nil {
		if errors.Is(err, stores.ErrQRNotFound) {
			respondError(c, http.StatusNotFound, "QR Code not found")
			return
		}
		h.Logger.WithError(err).Error("failed to load qr record")
		respondError(c, http.StatusInternalServerError, "Error updating QR code.")
		return
	}
	if qr.UserID != userID {
		respondError(c, http.StatusForbidden, "Unauthorized access")
		return
	}

	if name := c.PostForm("qrName"); name != "" {
		qr.QRName = name
	}

	content, ok := h.readContent(c)
	if !ok {
		return
	}

	oldMedia := qr.MediaPath
	oldLogo := qr.LogoPath

	var payload string
	switch content.variant {
	case models.TypeMedia:
		payload, err = h.Assets.SaveUpload(content.media)
		if err != nil {
			h.Logger.WithError(err).Error("failed to store media upload")
			respondError(c, http.StatusInternalServerError, "Failed to save media file")
			return
		}
	case models.TypeText:
		payload = content.text
	case models.TypeURL:
		payload = content.url
	}
	qr.SetContent(content.variant, payload)
	styleFromForm(c, qr)

	// A new logo replaces the old one; no logo in the form clears it.
	qr.LogoPath = ""
	if logo, err := c.FormFile("logo"); err == nil {
		logoPath, err := h.Assets.SaveLogo(logo)
		if err != nil {
			h.Logger.WithError(err).Error("failed to store logo")
			respondError(c, http.StatusInternalServerError, "Failed to save logo file")
			return
		}
		qr.LogoPath = logoPath
	}

	if err := h.QRs.Update(qr); err != nil {
		h.Assets.Remove(qr.LogoPath)
		if qr.Type == models.TypeMedia {
			h.Assets.Remove(qr.MediaPath)
		}
		if errors.Is(err, stores.ErrQRNotFound) {
			// Deleted while we were updating; do not resurrect it.
			respondError(c, http.StatusNotFound, "QR Code not found")
			return
		}
		h.Logger.WithError(err).Error("failed to save qr record")
		respondError(c, http.StatusInternalServerError, "Error updating QR code.")
		return
	}

	// The previous media file is stale whether the variant changed or the
	// file was replaced; same for a replaced or cleared logo.
	if oldMedia != "" && oldMedia != qr.MediaPath {
		h.Assets.Remove(oldMedia)
	}
	if oldLogo != "" && oldLogo != qr.LogoPath {
		h.Assets.Remove(oldLogo)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "QR Code updated successfully.",
		"type":    "success",
		"qrCode":  qr,
	})
}

// Delete removes a record by id, but only for its owner. Wrong id and wrong
// owner are deliberately indistinguishable in the response.
func (h *Handler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, "QR Code not found or you are not authorized to delete it")
		return
	}

	qr, err := h.QRs.DeleteOwned(id, userID)
	if err != nil {
		if errors.Is(err, stores.ErrQRNotFound) {
			respondError(c, http.StatusNotFound, "QR Code not found or you are not authorized to delete it")
			return
		}
		h.Logger.WithError(err).Error("failed to delete qr record")
		respondError(c, http.StatusInternalServerError, "An error occurred during deletion")
		return
	}

	// The record is gone; asset cleanup is best-effort.
	h.Assets.Remove(qr.MediaPath)
	h.Assets.Remove(qr.LogoPath)
	h.Assets.Remove(qr.QRImage)

	c.JSON(http.StatusOK, gin.H{
		"message": "QR Code deleted successfully!",
		"type":    "success",
	})
}

// ensureUniqueCode keeps the client's candidate when it is a well-formed
// lookup code and free, and reissues server-side otherwise. A malformed
// candidate must never be persisted: the public resolver only matches
// 6-char [A-Z0-9] paths, so any other code would be unreachable forever.
func (h *Handler) ensureUniqueCode(candidate string) (string, error) {
	code := candidate
	for i := 0; i < codeRetries; i++ {
		if codePattern.MatchString(code) {
			exists, err := h.QRs.CodeExists(code)
			if err != nil {
				return "", err
			}
			if !exists {
				return code, nil
			}
		}
		var err error
		code, err = qrgen.NewLookupCode()
		if err != nil {
			return "", err
		}
	}
	return "", errors.New("could not allocate a unique lookup code")
}
