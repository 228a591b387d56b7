package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis points a RedisStore at an in-memory miniredis server.
func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return &RedisStore{client: client}, mr
}

func TestRedisStore_RoundTrip(t *testing.T) {
	s, _ := setupTestRedis(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "ctx1", KeyWishlist)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "ctx1", KeyWishlist, []byte(`[{"productId":9}]`)))
	got, err := s.Get(ctx, "ctx1", KeyWishlist)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"productId":9}]`, string(got))

	require.NoError(t, s.Delete(ctx, "ctx1", KeyWishlist))
	_, err = s.Get(ctx, "ctx1", KeyWishlist)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_KeysAreNamespaced(t *testing.T) {
	s, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "ctx1", KeyCart, []byte(`[]`)))
	assert.True(t, mr.Exists("ctx:ctx1:cart"))
	assert.False(t, mr.Exists("ctx:ctx2:cart"))
}
