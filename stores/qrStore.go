package stores

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/qrvault/qrvault-backend/models"
)

var ErrQRNotFound = errors.New("qr code not found")

type QRStore struct {
	DB *gorm.DB
}

func NewQRStore(db *gorm.DB) *QRStore {
	return &QRStore{DB: db}
}

func (s *QRStore) Create(qr *models.QRCode) error {
	return s.DB.Create(qr).Error
}

func (s *QRStore) FindByCode(code string) (*models.QRCode, error) {
	var qr models.QRCode
	if err := s.DB.Where("code = ?", code).First(&qr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQRNotFound
		}
		return nil, err
	}
	return &qr, nil
}

func (s *QRStore) FindByID(id uuid.UUID) (*models.QRCode, error) {
	var qr models.QRCode
	if err := s.DB.First(&qr, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQRNotFound
		}
		return nil, err
	}
	return &qr, nil
}

func (s *QRStore) CodeExists(code string) (bool, error) {
	var count int64
	if err := s.DB.Model(&models.QRCode{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByOwner returns the owner's records, newest first.
func (s *QRStore) ListByOwner(owner uuid.UUID) ([]models.QRCode, error) {
	var codes []models.QRCode
	err := s.DB.Where("user_id = ?", owner).Order("created_at DESC").Find(&codes).Error
	return codes, err
}

// Update writes the full record keyed by primary key. A record deleted out
// from under the update yields ErrQRNotFound rather than a resurrected row.
func (s *QRStore) Update(qr *models.QRCode) error {
	res := s.DB.Model(&models.QRCode{}).Where("id = ?", qr.ID).Select(
		"qr_name", "type", "url", "media_path", "text",
		"qr_dot_color", "background_color", "dot_style", "corner_style",
		"apply_gradient", "logo_path", "updated_at",
	).Updates(qr)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrQRNotFound
	}
	return nil
}

// DeleteOwned removes the record only when both id and owner match, so a
// non-owner cannot tell a foreign record from a missing one.
func (s *QRStore) DeleteOwned(id, owner uuid.UUID) (*models.QRCode, error) {
	var qr models.QRCode
	if err := s.DB.Where("id = ? AND user_id = ?", id, owner).First(&qr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQRNotFound
		}
		return nil, err
	}
	res := s.DB.Where("id = ? AND user_id = ?", id, owner).Delete(&models.QRCode{})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrQRNotFound
	}
	return &qr, nil
}
