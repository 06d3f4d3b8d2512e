package session

import (
	"context"
	"testing"
	"time"

	"emporia-be/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(ttl time.Duration) *MemoryStore {
	// Build directly so tests don't launch the sweeper goroutine.
	return &MemoryStore{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func TestMemoryStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(time.Hour)

	token, err := store.Create(ctx, 42, user.RoleUser)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	sess, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, 42, sess.UserID)
	assert.Equal(t, user.RoleUser, sess.Role)
	assert.False(t, sess.SeenApproval)
}

func TestMemoryStore_GetUnknownToken(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(time.Hour)

	_, err := store.Get(ctx, "no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Destroy(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(time.Hour)

	token, err := store.Create(ctx, 42, user.RoleAdmin)
	require.NoError(t, err)

	require.NoError(t, store.MarkApprovalSeen(ctx, token))
	require.NoError(t, store.Destroy(ctx, token))

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)

	// A fresh session after logout starts with the one-shot flag cleared.
	token2, err := store.Create(ctx, 42, user.RoleAdmin)
	require.NoError(t, err)

	sess, err := store.Get(ctx, token2)
	require.NoError(t, err)
	assert.False(t, sess.SeenApproval)
}

func TestMemoryStore_MarkApprovalSeen(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(time.Hour)

	token, err := store.Create(ctx, 42, user.RoleUser)
	require.NoError(t, err)

	require.NoError(t, store.MarkApprovalSeen(ctx, token))

	sess, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.True(t, sess.SeenApproval)

	assert.ErrorIs(t, store.MarkApprovalSeen(ctx, "no-such-token"), ErrNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(time.Hour)

	current := time.Now()
	store.now = func() time.Time { return current }

	token, err := store.Create(ctx, 42, user.RoleUser)
	require.NoError(t, err)

	// Advance past the TTL.
	current = current.Add(2 * time.Hour)

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.MarkApprovalSeen(ctx, token), ErrNotFound)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(time.Hour)

	token, err := store.Create(ctx, 42, user.RoleUser)
	require.NoError(t, err)

	sess, err := store.Get(ctx, token)
	require.NoError(t, err)

	// Mutating the returned session must not affect the stored one.
	sess.SeenApproval = true

	fresh, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.False(t, fresh.SeenApproval)
}
