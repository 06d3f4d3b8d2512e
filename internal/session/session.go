package session

import (
	"context"
	"errors"
	"time"

	"emporia-be/internal/user"
)

// Session is the ephemeral, token-keyed state of an authenticated browser
// session. SeenApproval is the one-shot flag for the seller approval view;
// it dies with the session.
type Session struct {
	UserID       int       `json:"user_id"`
	Role         user.Role `json:"role"`
	SeenApproval bool      `json:"seen_approval"`
}

var ErrNotFound = errors.New("session not found")

// Store resolves opaque tokens to sessions. Implementations must expire
// sessions after the configured TTL.
type Store interface {
	Create(ctx context.Context, userID int, role user.Role) (string, error)
	Get(ctx context.Context, token string) (*Session, error)
	Destroy(ctx context.Context, token string) error
	MarkApprovalSeen(ctx context.Context, token string) error
}

const defaultTTL = 24 * time.Hour
