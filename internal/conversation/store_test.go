package conversation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fetamlet/go-telegram-cutbot/internal/conversation"
)

func TestSessionStore_PutGetDelete(t *testing.T) {
	store, err := conversation.NewSessionStore(zap.NewNop(), 4)
	require.NoError(t, err)

	_, ok := store.Get(1)
	assert.False(t, ok)

	store.Put(1, &conversation.Session{State: conversation.StateOperation})

	sess, ok := store.Get(1)
	require.True(t, ok)
	assert.Equal(t, conversation.StateOperation, sess.State)

	store.Delete(1)
	_, ok = store.Get(1)
	assert.False(t, ok)
}

func TestSessionStore_EvictsOldestWhenFull(t *testing.T) {
	store, err := conversation.NewSessionStore(zap.NewNop(), 2)
	require.NoError(t, err)

	store.Put(1, &conversation.Session{})
	store.Put(2, &conversation.Session{})
	store.Put(3, &conversation.Session{})

	_, ok := store.Get(1)
	assert.False(t, ok, "oldest session is evicted at capacity")

	_, ok = store.Get(3)
	assert.True(t, ok)
}

func TestSessionStore_InvalidSize(t *testing.T) {
	_, err := conversation.NewSessionStore(zap.NewNop(), 0)
	assert.Error(t, err)
}
