package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shophub-io/storefront/api"
	"github.com/shophub-io/storefront/checkout"
	"github.com/shophub-io/storefront/config"
	"github.com/shophub-io/storefront/store"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testEngine(t *testing.T) *gin.Engine {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	registry := checkout.NewRegistry()
	t.Cleanup(registry.Stop)

	r := gin.New()
	SetupRoutes(r, Deps{
		Config:   &config.Config{JWTSecret: "test-secret"},
		Store:    store.NewMemoryStore(),
		API:      api.New("http://127.0.0.1:0", log),
		Checkout: registry,
		Log:      log,
	})
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestInformationalPages(t *testing.T) {
	r := testEngine(t)

	for _, path := range []string{
		"/pages/contact", "/pages/help", "/pages/faq", "/pages/shipping",
		"/pages/returns", "/pages/terms", "/pages/privacy", "/pages/cookies",
	} {
		assert.Equal(t, http.StatusOK, get(r, path).Code, path)
	}

	// /pages/faq serves the help center content.
	assert.Contains(t, get(r, "/pages/faq").Body.String(), "Help Center")
}

func TestUnknownRouteFallsThroughTo404(t *testing.T) {
	r := testEngine(t)

	w := get(r, "/pages/nonsense")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}
