package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QR content variants. Exactly one payload field is populated per variant;
// SetContent keeps that invariant.
const (
	TypeURL   = "url"
	TypeMedia = "media"
	TypeText  = "text"
)

type QRCode struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID" json:"-"`

	QRName string `gorm:"not null" json:"qrName"`
	Type   string `gorm:"not null" json:"type"`

	URL       string `json:"url,omitempty"`
	MediaPath string `json:"media_url,omitempty"`
	Text      string `json:"text,omitempty"`

	Code    string `gorm:"uniqueIndex;not null" json:"code"`
	QRImage string `gorm:"not null" json:"qr_image"`

	QRDotColor      string `gorm:"not null" json:"qrDotColor"`
	BackgroundColor string `gorm:"not null" json:"backgroundColor"`
	DotStyle        string `gorm:"not null" json:"dotStyle"`
	CornerStyle     string `gorm:"not null" json:"cornerStyle"`
	ApplyGradient   string `gorm:"not null" json:"applyGradient"`
	LogoPath        string `json:"logo,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (q *QRCode) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// SetContent switches the record to the given variant and clears the payload
// slots of the other two, so at most one payload is ever non-empty.
func (q *QRCode) SetContent(variant, payload string) {
	q.Type = variant
	q.URL = ""
	q.MediaPath = ""
	q.Text = ""
	switch variant {
	case TypeURL:
		q.URL = payload
	case TypeMedia:
		q.MediaPath = payload
	case TypeText:
		q.Text = payload
	}
}
