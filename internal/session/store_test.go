package session

import (
	"testing"
	"time"

	"github.com/goldcrust/storefront/internal/cart"
	"github.com/goldcrust/storefront/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(ttl time.Duration) *Store {
	return NewStore(ttl, logger.New("error"), func(id string) *Session {
		return &Session{ID: id, Cart: cart.New()}
	})
}

func TestStore_CreateAndGet(t *testing.T) {
	store := newTestStore(time.Minute)

	sess := store.Create()
	require.NotEmpty(t, sess.ID)
	require.NotNil(t, sess.Cart)

	got, ok := store.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)

	_, ok = store.Get("unknown")
	assert.False(t, ok)
}

func TestStore_SessionsAreIndependent(t *testing.T) {
	store := newTestStore(time.Minute)

	a := store.Create()
	b := store.Create()

	require.NotEqual(t, a.ID, b.ID)
	assert.NotSame(t, a.Cart, b.Cart)
	assert.Equal(t, 2, store.Len())
}

func TestStore_ExpiryOnGet(t *testing.T) {
	store := newTestStore(10 * time.Millisecond)

	sess := store.Create()
	time.Sleep(25 * time.Millisecond)

	_, ok := store.Get(sess.ID)
	assert.False(t, ok, "expired sessions must not be returned")
}

func TestStore_Sweep(t *testing.T) {
	store := newTestStore(10 * time.Millisecond)

	store.Create()
	store.Create()
	time.Sleep(25 * time.Millisecond)
	live := store.Create()

	store.sweep()

	assert.Equal(t, 1, store.Len())
	_, ok := store.Get(live.ID)
	assert.True(t, ok)
}
