package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/biblioteca/biblioteca-backend/src/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ManagerService struct {
	db     *gorm.DB
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewManagerService creates a new instance of ManagerService
func NewManagerService(db *gorm.DB, secret []byte, ttl time.Duration) *ManagerService {
	return &ManagerService{db: db, secret: secret, ttl: ttl, now: time.Now}
}

// EnsureManager stores the manager credential, creating it or replacing its hash.
func (s *ManagerService) EnsureManager(ctx context.Context, email, password string) (*models.ManagerModel, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, errors.New("manager email and password are required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var manager models.ManagerModel
	err = s.db.WithContext(ctx).Where("email = ?", email).First(&manager).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		manager = models.ManagerModel{Email: email, Password: string(hashedPassword)}
		if err := s.db.WithContext(ctx).Create(&manager).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if err := s.db.WithContext(ctx).Model(&manager).Update("password", string(hashedPassword)).Error; err != nil {
			return nil, err
		}
	}
	return &manager, nil
}

// HasManager reports whether a credential for email exists.
func (s *ManagerService) HasManager(ctx context.Context, email string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.ManagerModel{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error
	return count > 0, err
}

// Authenticate checks the manager credentials and returns a signed session token
func (s *ManagerService) Authenticate(ctx context.Context, email, password string) (string, error) {
	var manager models.ManagerModel
	result := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&manager)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", result.Error
	}

	// Compare the provided password with the hashed password in the database
	if err := bcrypt.CompareHashAndPassword([]byte(manager.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"id":    manager.Id,
		"email": manager.Email,
		"exp":   s.now().Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
