package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/user"
)

func createTestSession(t *testing.T, repo *SessionRepository, userID uint, ip, userAgent string) *user.LoginSession {
	s, err := user.NewLoginSession(userID, ip, userAgent)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), s))
	return s
}

func TestSessionRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	s := createTestSession(t, repo, 1, "203.0.113.10", "Mozilla/5.0 (Windows NT 10.0)")
	assert.NotZero(t, s.ID())

	found, err := repo.GetByID(ctx, s.ID())
	assert.NoError(t, err)
	assert.Equal(t, uint(1), found.UserID())
	assert.Equal(t, "203.0.113.10", found.IPAddress())
	assert.Equal(t, "Windows", found.DeviceName())
	assert.False(t, found.IsRevoked())
	assert.Nil(t, found.RevokedAt())
}

func TestSessionRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	found, err := repo.GetByID(ctx, 99999)
	assert.Error(t, err)
	assert.Nil(t, found)
	assert.Contains(t, err.Error(), "not found")
}

func TestSessionRepository_GetActiveByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	base := time.Now()

	older := createTestSession(t, repo, 1, "203.0.113.10", "Mozilla/5.0 (Macintosh)")
	older.Touch(base.Add(-time.Hour))
	require.NoError(t, repo.Update(ctx, older))

	newer := createTestSession(t, repo, 1, "203.0.113.11", "Mozilla/5.0 (X11; Linux x86_64)")
	newer.Touch(base)
	require.NoError(t, repo.Update(ctx, newer))

	revoked := createTestSession(t, repo, 1, "203.0.113.12", "Mozilla/5.0 (iPhone)")
	revoked.Revoke()
	require.NoError(t, repo.Update(ctx, revoked))

	createTestSession(t, repo, 2, "203.0.113.13", "Mozilla/5.0 (Android)")

	sessions, err := repo.GetActiveByUserID(ctx, 1)
	assert.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, newer.ID(), sessions[0].ID())
	assert.Equal(t, older.ID(), sessions[1].ID())
}

func TestSessionRepository_ExistsActiveByUserIP(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	s := createTestSession(t, repo, 1, "203.0.113.10", "Mozilla/5.0 (Windows NT 10.0)")

	t.Run("known IP", func(t *testing.T) {
		known, err := repo.ExistsActiveByUserIP(ctx, 1, "203.0.113.10")
		assert.NoError(t, err)
		assert.True(t, known)
	})

	t.Run("unknown IP", func(t *testing.T) {
		known, err := repo.ExistsActiveByUserIP(ctx, 1, "198.51.100.1")
		assert.NoError(t, err)
		assert.False(t, known)
	})

	t.Run("other user's IP does not count", func(t *testing.T) {
		known, err := repo.ExistsActiveByUserIP(ctx, 2, "203.0.113.10")
		assert.NoError(t, err)
		assert.False(t, known)
	})

	t.Run("revoked session does not count", func(t *testing.T) {
		s.Revoke()
		require.NoError(t, repo.Update(ctx, s))

		known, err := repo.ExistsActiveByUserIP(ctx, 1, "203.0.113.10")
		assert.NoError(t, err)
		assert.False(t, known)
	})
}

func TestSessionRepository_RevokeAllExceptIP(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	current := createTestSession(t, repo, 1, "203.0.113.10", "Mozilla/5.0 (Windows NT 10.0)")
	other1 := createTestSession(t, repo, 1, "203.0.113.11", "Mozilla/5.0 (Macintosh)")
	other2 := createTestSession(t, repo, 1, "203.0.113.12", "Mozilla/5.0 (iPhone)")
	foreign := createTestSession(t, repo, 2, "203.0.113.13", "Mozilla/5.0 (Android)")

	count, err := repo.RevokeAllExceptIP(ctx, 1, "203.0.113.10")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	t.Run("current IP session stays active", func(t *testing.T) {
		found, err := repo.GetByID(ctx, current.ID())
		assert.NoError(t, err)
		assert.False(t, found.IsRevoked())
	})

	t.Run("other sessions are revoked with timestamp", func(t *testing.T) {
		for _, id := range []uint{other1.ID(), other2.ID()} {
			found, err := repo.GetByID(ctx, id)
			assert.NoError(t, err)
			assert.True(t, found.IsRevoked())
			assert.NotNil(t, found.RevokedAt())
		}
	})

	t.Run("other user's session untouched", func(t *testing.T) {
		found, err := repo.GetByID(ctx, foreign.ID())
		assert.NoError(t, err)
		assert.False(t, found.IsRevoked())
	})

	t.Run("second call revokes nothing", func(t *testing.T) {
		count, err := repo.RevokeAllExceptIP(ctx, 1, "203.0.113.10")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}

func TestSessionRepository_DeleteByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	createTestSession(t, repo, 1, "203.0.113.10", "Mozilla/5.0 (Windows NT 10.0)")
	createTestSession(t, repo, 1, "203.0.113.11", "Mozilla/5.0 (Macintosh)")
	kept := createTestSession(t, repo, 2, "203.0.113.12", "Mozilla/5.0 (iPhone)")

	err := repo.DeleteByUserID(ctx, 1)
	assert.NoError(t, err)

	sessions, err := repo.GetActiveByUserID(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, sessions, 0)

	found, err := repo.GetByID(ctx, kept.ID())
	assert.NoError(t, err)
	assert.Equal(t, uint(2), found.UserID())
}
