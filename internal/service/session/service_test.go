package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLN-BookingFlow/internal/domain"
	sessionRepo "github.com/m04kA/SLN-BookingFlow/internal/infra/storage/session"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeSessionRepo struct {
	sessions map[string]*domain.UserSession
	err      error
}

func (r *fakeSessionRepo) GetByToken(ctx context.Context, token string) (*domain.UserSession, error) {
	if r.err != nil {
		return nil, r.err
	}
	sess, ok := r.sessions[token]
	if !ok {
		return nil, sessionRepo.ErrSessionNotFound
	}
	return sess, nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, token string) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.sessions[token]; !ok {
		return sessionRepo.ErrSessionNotFound
	}
	delete(r.sessions, token)
	return nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func newTestService(repo *fakeSessionRepo, now time.Time) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: now}
	return svc
}

func TestResolve(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeSessionRepo{sessions: map[string]*domain.UserSession{
		"valid": {
			Token:     "valid",
			UserID:    42,
			FullName:  "Ivan Petrov",
			ExpiresAt: now.Add(time.Hour),
		},
		"expired": {
			Token:     "expired",
			UserID:    43,
			ExpiresAt: now.Add(-time.Minute),
		},
	}}
	svc := newTestService(repo, now)

	t.Run("valid token", func(t *testing.T) {
		sess, err := svc.Resolve(context.Background(), "valid")
		require.NoError(t, err)
		require.NotNil(t, sess)
		assert.Equal(t, int64(42), sess.UserID)
	})

	// empty, unknown and expired tokens all mean "not signed in", not an error
	t.Run("empty token", func(t *testing.T) {
		sess, err := svc.Resolve(context.Background(), "")
		require.NoError(t, err)
		assert.Nil(t, sess)
	})

	t.Run("unknown token", func(t *testing.T) {
		sess, err := svc.Resolve(context.Background(), "unknown")
		require.NoError(t, err)
		assert.Nil(t, sess)
	})

	t.Run("expired session", func(t *testing.T) {
		sess, err := svc.Resolve(context.Background(), "expired")
		require.NoError(t, err)
		assert.Nil(t, sess)
	})
}

func TestResolve_RepositoryError(t *testing.T) {
	svc := newTestService(&fakeSessionRepo{err: errors.New("db down")}, time.Now())

	_, err := svc.Resolve(context.Background(), "token")

	assert.ErrorIs(t, err, ErrInternal)
}

func TestLogout(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeSessionRepo{sessions: map[string]*domain.UserSession{
		"valid": {Token: "valid", UserID: 42, ExpiresAt: now.Add(time.Hour)},
	}}
	svc := newTestService(repo, now)

	require.NoError(t, svc.Logout(context.Background(), "valid"))

	sess, err := svc.Resolve(context.Background(), "valid")
	require.NoError(t, err)
	assert.Nil(t, sess)

	// repeated logout and unknown tokens are not errors
	assert.NoError(t, svc.Logout(context.Background(), "valid"))
	assert.NoError(t, svc.Logout(context.Background(), "unknown"))
	assert.NoError(t, svc.Logout(context.Background(), ""))
}

func TestDecideNextStep(t *testing.T) {
	svc := newTestService(&fakeSessionRepo{}, time.Now())

	assert.Equal(t, StepProceed, svc.DecideNextStep(true))
	assert.Equal(t, StepGuestOrSignIn, svc.DecideNextStep(false))
}
