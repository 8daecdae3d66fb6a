// Package session guarda a sessão do médico no servidor. O navegador só
// recebe o id opaco, assinado dentro de um cookie JWT.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	ID          string    `json:"id"`
	PhysicianID uint      `json:"physician_id"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type Store interface {
	Create(ctx context.Context, physicianID uint, ttl time.Duration) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	// DeleteByPhysician encerra todas as sessões do médico.
	DeleteByPhysician(ctx context.Context, physicianID uint) error
}

func newSession(physicianID uint, ttl time.Duration, now time.Time) *Session {
	return &Session{
		ID:          uuid.NewString(),
		PhysicianID: physicianID,
		ExpiresAt:   now.Add(ttl),
	}
}
