package cartControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shophub-io/storefront/api"
	"github.com/shophub-io/storefront/middleware"
	"github.com/shophub-io/storefront/store"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

// fakeBackend serves the single product the tests add to the cart.
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/products/7" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":7,"name":"Laptop","price":999.5,"imageUrl":"/img/7.png","category":"Electronics"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Product not found"}`))
	}))
}

func cartRouter(t *testing.T, backendURL string) *gin.Engine {
	t.Helper()
	log := testLogger()
	apic := api.New(backendURL, log)

	r := gin.New()
	r.Use(middleware.BrowserContext("test-secret"))
	r.Use(middleware.AttachState(store.NewMemoryStore(), apic, log))
	r.GET("/cart", GetCart())
	r.POST("/cart", AddCartItem(apic))
	r.PUT("/cart/:product_id", UpdateCartItem())
	r.DELETE("/cart/:product_id", DeleteCartItem())
	r.DELETE("/cart", ClearCart())
	return r
}

type cartResponse struct {
	Items []struct {
		ProductID int64   `json:"productId"`
		Name      string  `json:"name"`
		Price     float64 `json:"price"`
		Quantity  int     `json:"quantity"`
	} `json:"items"`
	Total  float64 `json:"total"`
	Count  int     `json:"count"`
	Notice *struct {
		Level   string `json:"level"`
		Message string `json:"message"`
	} `json:"notice"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string, cookies []*http.Cookie) (*httptest.ResponseRecorder, cartResponse) {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp cartResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestAddCartItem_FetchesProductAndMerges(t *testing.T) {
	backend := fakeBackend(t)
	defer backend.Close()
	r := cartRouter(t, backend.URL)

	w, resp := doJSON(t, r, http.MethodPost, "/cart", `{"productId":7,"quantity":2}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Laptop", resp.Items[0].Name)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	require.NotNil(t, resp.Notice)
	assert.Equal(t, "Laptop added to cart!", resp.Notice.Message)

	// Same product again, same browser context: quantities merge.
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	w2, resp2 := doJSON(t, r, http.MethodPost, "/cart", `{"productId":7,"quantity":3}`, cookies)
	require.Equal(t, http.StatusOK, w2.Code)
	require.Len(t, resp2.Items, 1)
	assert.Equal(t, 5, resp2.Items[0].Quantity)
	assert.Equal(t, 5, resp2.Count)
}

func TestGetCart_SurvivesAcrossRequests(t *testing.T) {
	backend := fakeBackend(t)
	defer backend.Close()
	r := cartRouter(t, backend.URL)

	w, _ := doJSON(t, r, http.MethodPost, "/cart", `{"productId":7,"quantity":1}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()

	w2, resp := doJSON(t, r, http.MethodGet, "/cart", "", cookies)
	require.Equal(t, http.StatusOK, w2.Code)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(7), resp.Items[0].ProductID)
	assert.InDelta(t, 999.5, resp.Total, 0.001)
}

func TestAddCartItem_UnknownProductFails(t *testing.T) {
	backend := fakeBackend(t)
	defer backend.Close()
	r := cartRouter(t, backend.URL)

	w, _ := doJSON(t, r, http.MethodPost, "/cart", `{"productId":999,"quantity":1}`, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")
}

func TestUpdateCartItem_ZeroQuantityRemoves(t *testing.T) {
	backend := fakeBackend(t)
	defer backend.Close()
	r := cartRouter(t, backend.URL)

	w, _ := doJSON(t, r, http.MethodPost, "/cart", `{"productId":7,"quantity":2}`, nil)
	cookies := w.Result().Cookies()

	w2, resp := doJSON(t, r, http.MethodPut, "/cart/7", `{"quantity":0}`, cookies)
	require.Equal(t, http.StatusOK, w2.Code)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0, resp.Count)
}

func TestClearCart(t *testing.T) {
	backend := fakeBackend(t)
	defer backend.Close()
	r := cartRouter(t, backend.URL)

	w, _ := doJSON(t, r, http.MethodPost, "/cart", `{"productId":7,"quantity":2}`, nil)
	cookies := w.Result().Cookies()

	w2, resp := doJSON(t, r, http.MethodDelete, "/cart", "", cookies)
	require.Equal(t, http.StatusOK, w2.Code)
	assert.Empty(t, resp.Items)
	require.NotNil(t, resp.Notice)
	assert.Equal(t, "Cart cleared", resp.Notice.Message)
}
