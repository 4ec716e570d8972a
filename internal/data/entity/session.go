package entity

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	Token     uuid.UUID `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
