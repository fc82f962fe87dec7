// Package assets manages the durable file areas referenced by QR records:
// uploaded media, generated QR images, and logos. Paths handed back are
// relative to the application root, matching what records store.
package assets

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v4"
	"github.com/sirupsen/logrus"
)

type Store struct {
	UploadDir  string
	QRImageDir string
	LogoDir    string
	Logger     *logrus.Logger
}

func NewStore(uploadDir, qrImageDir, logoDir string, logger *logrus.Logger) (*Store, error) {
	for _, dir := range []string{uploadDir, qrImageDir, logoDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create asset dir %s: %w", dir, err)
		}
	}
	return &Store{
		UploadDir:  uploadDir,
		QRImageDir: qrImageDir,
		LogoDir:    logoDir,
		Logger:     logger,
	}, nil
}

// SaveUpload writes an uploaded media file under the uploads area with a
// collision-resistant name and returns its relative path.
func (s *Store) SaveUpload(fh *multipart.FileHeader) (string, error) {
	name := shortuuid.New() + "_" + filepath.Base(fh.Filename)
	dest := filepath.Join(s.UploadDir, name)
	if err := saveFile(fh, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// SaveLogo writes a logo file under the logo area, keeping only the
// original extension.
func (s *Store) SaveLogo(fh *multipart.FileHeader) (string, error) {
	name := shortuuid.New() + filepath.Ext(fh.Filename)
	dest := filepath.Join(s.LogoDir, name)
	if err := saveFile(fh, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// NewQRImagePath reserves a unique path for a generated QR PNG.
func (s *Store) NewQRImagePath() string {
	return filepath.Join(s.QRImageDir, uuid.New().String()+".png")
}

// Remove deletes a stored asset best-effort. Failures are logged and never
// surfaced; the database record is the authority and orphaned files are an
// accepted failure mode.
func (s *Store) Remove(relPath string) {
	if relPath == "" {
		return
	}
	if err := os.Remove(relPath); err != nil && !os.IsNotExist(err) {
		s.Logger.WithError(err).WithField("path", relPath).Warn("failed to remove stale asset")
	}
}

func saveFile(fh *multipart.FileHeader, dest string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}
	return nil
}
