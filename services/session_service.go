package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"gorm.io/gorm"

	"tours-backend/models"
)

// Sessions live 7 days from creation, absolutely — there is no sliding
// renewal.
const sessionTTL = 7 * 24 * time.Hour

// SessionService issues, validates, and revokes the opaque bearer tokens
// that gate the admin surface. A token is the whole credential: sessions
// carry no user identity.
type SessionService struct {
	DB *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{DB: db}
}

// Create mints a 256-bit random token and stores it with its expiry.
func (s *SessionService) Create() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	token := hex.EncodeToString(buf)

	sess := models.Session{
		ID:        token,
		ExpiresAt: time.Now().UTC().Add(sessionTTL),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.DB.Create(&sess).Error; err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Validate reports whether a stored, non-expired session with exactly this
// token exists. This is the sole authorization check for admin writes.
func (s *SessionService) Validate(token string) bool {
	if token == "" {
		return false
	}
	var n int64
	err := s.DB.Model(&models.Session{}).
		Where("id = ? AND expires_at > ?", token, time.Now().UTC()).
		Count(&n).Error
	if err != nil {
		return false
	}
	return n > 0
}

// Revoke deletes the session unconditionally. Revoking an unknown token is
// a no-op.
func (s *SessionService) Revoke(token string) error {
	return s.DB.Where("id = ?", token).Delete(&models.Session{}).Error
}

// SweepExpired bulk-deletes every session past its expiry. Deleting an
// already-deleted row is a no-op, so concurrent sweeps need no locking.
func (s *SessionService) SweepExpired() error {
	return s.DB.Where("expires_at <= ?", time.Now().UTC()).Delete(&models.Session{}).Error
}
