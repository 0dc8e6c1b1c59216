package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sessionID, err := store.Create(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)

	userID, err := store.UserID(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)

	require.NoError(t, store.Delete(ctx, sessionID))

	_, err = store.UserID(ctx, sessionID)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestMemoryStoreUnknownSession(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.UserID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNoSession)

	// Deleting a session that was never issued is not an error.
	assert.NoError(t, store.Delete(context.Background(), "nope"))
}

func TestMemoryStoreIssuesDistinctIDs(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first, err := store.Create(ctx, 1)
	require.NoError(t, err)
	second, err := store.Create(ctx, 1)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
