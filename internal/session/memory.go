package session

import (
	"context"
	"sync"
	"time"

	"emporia-be/internal/user"

	"github.com/google/uuid"
)

type entry struct {
	session   Session
	expiresAt time.Time
}

// MemoryStore is the single-process store used when no Redis is configured.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	s := &MemoryStore{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}

	go s.sweep()
	return s
}

// sweep removes expired sessions to keep the map from growing unbounded.
func (s *MemoryStore) sweep() {
	for {
		time.Sleep(time.Minute)

		s.mu.Lock()
		now := s.now()
		for token, e := range s.sessions {
			if now.After(e.expiresAt) {
				delete(s.sessions, token)
			}
		}
		s.mu.Unlock()
	}
}

func (s *MemoryStore) Create(ctx context.Context, userID int, role user.Role) (string, error) {
	token := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = &entry{
		session:   Session{UserID: userID, Role: role},
		expiresAt: s.now().Add(s.ttl),
	}

	return token, nil
}

func (s *MemoryStore) Get(ctx context.Context, token string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[token]
	if !ok || s.now().After(e.expiresAt) {
		delete(s.sessions, token)
		return nil, ErrNotFound
	}

	copied := e.session
	return &copied, nil
}

func (s *MemoryStore) Destroy(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}

func (s *MemoryStore) MarkApprovalSeen(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[token]
	if !ok || s.now().After(e.expiresAt) {
		return ErrNotFound
	}

	e.session.SeenApproval = true
	return nil
}
