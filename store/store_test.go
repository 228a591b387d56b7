package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Get(ctx, "ctx1", KeyCart)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "ctx1", KeyCart, []byte(`[{"productId":1}]`)))
	got, err := s.Get(ctx, "ctx1", KeyCart)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"productId":1}]`, string(got))

	// Other contexts are isolated.
	_, err = s.Get(ctx, "ctx2", KeyCart)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Delete(ctx, "ctx1", KeyCart))
	_, err = s.Get(ctx, "ctx1", KeyCart)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_DeleteMissingIsNoop(t *testing.T) {
	s := NewMemoryStore()
	assert.NoError(t, s.Delete(context.Background(), "nope", KeyToken))
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	ctx := context.Background()

	s1, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s1.Set(ctx, "ctx1", KeyToken, []byte(`"abc123"`)))
	require.NoError(t, s1.Set(ctx, "ctx1", KeyUser, []byte(`{"id":7,"role":"CUSTOMER"}`)))

	// Simulated reload: a fresh store over the same file sees the same state.
	s2, err := NewFileStore(path)
	require.NoError(t, err)

	tok, err := s2.Get(ctx, "ctx1", KeyToken)
	require.NoError(t, err)
	assert.Equal(t, `"abc123"`, string(tok))

	usr, err := s2.Get(ctx, "ctx1", KeyUser)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"role":"CUSTOMER"}`, string(usr))
}

func TestFileStore_DeleteRemovesFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	ctx := context.Background()

	s1, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s1.Set(ctx, "ctx1", KeyToken, []byte(`"abc"`)))
	require.NoError(t, s1.Delete(ctx, "ctx1", KeyToken))

	s2, err := NewFileStore(path)
	require.NoError(t, err)
	_, err = s2.Get(ctx, "ctx1", KeyToken)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, err)
	_, err = s.Get(context.Background(), "ctx1", KeyCart)
	assert.ErrorIs(t, err, ErrNotFound)
}
