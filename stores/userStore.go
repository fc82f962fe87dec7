package stores

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/qrvault/qrvault-backend/models"
)

var (
	ErrDuplicateEmail = errors.New("email already in use")
	ErrUserNotFound   = errors.New("user not found")
)

type UserStore struct {
	DB *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{DB: db}
}

// Create inserts the user, mapping the unique-email violation to
// ErrDuplicateEmail.
func (s *UserStore) Create(user *models.User) error {
	err := s.DB.Create(user).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// isUniqueViolation catches constraint errors the driver does not translate
// into gorm.ErrDuplicatedKey (sqlite in tests, older postgres drivers).
func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
