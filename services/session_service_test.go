package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tours-backend/models"
)

func TestSessionCreateThenValidate(t *testing.T) {
	db := openTestDB(t)
	svc := NewSessionService(db)

	token, err := svc.Create()
	require.NoError(t, err)
	// 32 random bytes, hex-encoded.
	assert.Len(t, token, 64)
	assert.True(t, svc.Validate(token))
}

func TestSessionValidateRejectsUnknownAndEmpty(t *testing.T) {
	db := openTestDB(t)
	svc := NewSessionService(db)

	assert.False(t, svc.Validate(""))
	assert.False(t, svc.Validate("deadbeef"))
}

func TestSessionExpiryInvalidates(t *testing.T) {
	db := openTestDB(t)
	svc := NewSessionService(db)

	token, err := svc.Create()
	require.NoError(t, err)

	// Force the stored expiry into the past.
	past := time.Now().UTC().Add(-time.Minute)
	require.NoError(t, db.Model(&models.Session{}).
		Where("id = ?", token).
		Update("expires_at", past).Error)

	assert.False(t, svc.Validate(token))
}

func TestSessionRevokeIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	svc := NewSessionService(db)

	token, err := svc.Create()
	require.NoError(t, err)
	require.NoError(t, svc.Revoke(token))
	assert.False(t, svc.Validate(token))
	// Revoking again is a no-op.
	require.NoError(t, svc.Revoke(token))
}

func TestSweepExpiredRemovesOnlyExpired(t *testing.T) {
	db := openTestDB(t)
	svc := NewSessionService(db)

	expired, err := svc.Create()
	require.NoError(t, err)
	live, err := svc.Create()
	require.NoError(t, err)

	past := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, db.Model(&models.Session{}).
		Where("id = ?", expired).
		Update("expires_at", past).Error)

	require.NoError(t, svc.SweepExpired())

	var n int64
	require.NoError(t, db.Model(&models.Session{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
	assert.True(t, svc.Validate(live))
	assert.False(t, svc.Validate(expired))

	// Sweeping again with nothing to do is fine.
	require.NoError(t, svc.SweepExpired())
}
