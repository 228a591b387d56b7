package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shophub-io/storefront/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return New(srv.URL, log), srv
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})
	defer srv.Close()

	ctx := WithToken(context.Background(), "tok-123")
	_, err := c.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})
	defer srv.Close()

	_, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_StatusErrorMapping(t *testing.T) {
	cases := []struct {
		status  int
		message string
	}{
		{401, "You are not authenticated. Please log in and try again."},
		{403, "You don't have permission to perform this action. Contact an administrator if you believe this is an error."},
		{404, "The requested resource was not found. The endpoint or resource may have been moved or removed."},
		{409, "A conflict occurred. This usually means a duplicate entry already exists."},
		{500, "Internal server error. The server encountered an unexpected error. Please try again later."},
	}

	for _, tc := range cases {
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		})

		_, err := c.GetProduct(context.Background(), 1)
		srv.Close()

		require.Error(t, err)
		apiErr, ok := AsError(err)
		require.True(t, ok)
		assert.Equal(t, tc.status, apiErr.Status)
		assert.Equal(t, tc.message, apiErr.Message)
	}
}

func TestClient_BackendMessageWins(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Email already registered"}`))
	})
	defer srv.Close()

	_, err := c.Login(context.Background(), "a@b.com", "pw")
	require.Error(t, err)
	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "Email already registered", apiErr.Message)
}

func TestClient_ConnectionRefused(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	c := New("http://127.0.0.1:1", log) // nothing listens here

	_, err := c.ListProducts(context.Background())
	require.Error(t, err)
	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Zero(t, apiErr.Status)
	assert.Contains(t, apiErr.Message, "Unable to connect to the server")
}

func TestClient_RegisterPassesPasswordAsQuery(t *testing.T) {
	var gotQuery string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("password")
		w.Write([]byte(`{"token":"t","user":{"id":1,"role":"CUSTOMER"}}`))
	})
	defer srv.Close()

	input := models.RegisterInput{Email: "a@b.com", FirstName: "A"}
	resp, err := c.Register(context.Background(), input, "secret1")
	require.NoError(t, err)
	assert.Equal(t, "secret1", gotQuery)
	assert.Equal(t, "t", resp.Token)
}
