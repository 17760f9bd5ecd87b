package domain

import "time"

// UserSession is the process-wide session record behind a bearer token.
// Written by login/logout, read by every authenticated request. Presence of
// a session is what makes a booking flow "authenticated".
type UserSession struct {
	Token     string
	UserID    int64
	FullName  string
	Phone     string
	Country   string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired reports whether the session is past its expiry.
func (s *UserSession) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
