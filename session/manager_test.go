package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shophub-io/storefront/api"
	"github.com/shophub-io/storefront/models"
	"github.com/shophub-io/storefront/store"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

// authBackend fakes the /auth endpoints of the remote API.
func authBackend(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.New(srv.URL, testLogger())
}

func TestLogin_StoresSessionAndPersists(t *testing.T) {
	client := authBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.Write([]byte(`{"token":"tok-1","user":{"id":7,"email":"a@b.com","firstName":"Ada","role":"CUSTOMER"}}`))
	})

	s := store.NewMemoryStore()
	m := NewManager(s, client, "ctx-a", testLogger())
	require.NoError(t, m.Restore(context.Background()))
	assert.Equal(t, Anonymous, m.State())

	resp, err := m.Login(context.Background(), "a@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", resp.Token)
	assert.True(t, m.IsAuthenticated())
	assert.Equal(t, int64(7), m.User().ID)

	// Simulated reload: a fresh manager restores the same session.
	m2 := NewManager(s, client, "ctx-a", testLogger())
	require.NoError(t, m2.Restore(context.Background()))
	assert.Equal(t, Authenticated, m2.State())
	assert.Equal(t, "tok-1", m2.Token())
	assert.Equal(t, "a@b.com", m2.User().Email)
}

func TestLogin_FailurePropagatesUntouched(t *testing.T) {
	client := authBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	m := NewManager(store.NewMemoryStore(), client, "ctx-a", testLogger())
	require.NoError(t, m.Restore(context.Background()))

	_, err := m.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)
	apiErr, ok := api.AsError(err)
	require.True(t, ok)
	assert.Equal(t, 401, apiErr.Status)
	assert.False(t, m.IsAuthenticated())
}

func TestRegister_AdoptsSessionOnlyWhenComplete(t *testing.T) {
	// Backend acknowledges registration but returns no token.
	client := authBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user":{"id":9,"email":"n@b.com","role":"CUSTOMER"}}`))
	})

	s := store.NewMemoryStore()
	m := NewManager(s, client, "ctx-a", testLogger())
	require.NoError(t, m.Restore(context.Background()))

	_, err := m.Register(context.Background(), models.RegisterInput{Email: "n@b.com", FirstName: "N"}, "secret1")
	require.NoError(t, err)
	assert.False(t, m.IsAuthenticated())

	_, err = s.Get(context.Background(), "ctx-a", store.KeyToken)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestLogout_ClearsMemoryAndStore(t *testing.T) {
	client := authBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok-1","user":{"id":7,"email":"a@b.com","role":"CUSTOMER"}}`))
	})

	s := store.NewMemoryStore()
	m := NewManager(s, client, "ctx-a", testLogger())
	require.NoError(t, m.Restore(context.Background()))
	_, err := m.Login(context.Background(), "a@b.com", "secret1")
	require.NoError(t, err)

	m.Logout(context.Background())
	assert.Equal(t, Anonymous, m.State())
	assert.Nil(t, m.User())
	assert.Empty(t, m.Token())

	_, err = s.Get(context.Background(), "ctx-a", store.KeyToken)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Get(context.Background(), "ctx-a", store.KeyUser)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRestore_PartialStateIsAnonymous(t *testing.T) {
	s := store.NewMemoryStore()
	require.NoError(t, s.Set(context.Background(), "ctx-a", store.KeyToken, []byte(`"tok-1"`)))
	// No user key: session must never be partial.

	m := NewManager(s, nil, "ctx-a", testLogger())
	require.NoError(t, m.Restore(context.Background()))
	assert.Equal(t, Anonymous, m.State())
	assert.Empty(t, m.Token())
}
