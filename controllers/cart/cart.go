package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shophub-io/storefront/api"
	"github.com/shophub-io/storefront/cart"
	"github.com/shophub-io/storefront/middleware"
)

type cartItemInput struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

type quantityInput struct {
	Quantity int `json:"quantity"`
}

func fail(c *gin.Context, err error) {
	if apiErr, ok := api.AsError(err); ok {
		status := apiErr.Status
		if status == 0 {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": apiErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error. The server encountered an unexpected error. Please try again later."})
}

func cartView(m *cart.Manager, notice cart.Notice) gin.H {
	resp := gin.H{
		"items": m.Lines(),
		"total": m.CartTotal(),
		"count": m.CartCount(),
	}
	if notice.Message != "" {
		resp["notice"] = notice
	}
	return resp
}

// GET /cart
func GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartView(middleware.Cart(c), cart.Notice{}))
	}
}

// POST /cart
// The product snapshot is fetched from the backend so a stale or
// fabricated payload cannot invent prices.
func AddCartItem(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input cartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := apic.GetProduct(c.Request.Context(), input.ProductID)
		if err != nil {
			fail(c, err)
			return
		}

		m := middleware.Cart(c)
		notice := m.AddToCart(c.Request.Context(), *product, input.Quantity)
		c.JSON(http.StatusOK, cartView(m, notice))
	}
}

// PUT /cart/:product_id
func UpdateCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := productIDParam(c)
		if !ok {
			return
		}
		var input quantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		m := middleware.Cart(c)
		notice := m.UpdateQuantity(c.Request.Context(), productID, input.Quantity)
		c.JSON(http.StatusOK, cartView(m, notice))
	}
}

// DELETE /cart/:product_id
func DeleteCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := productIDParam(c)
		if !ok {
			return
		}
		m := middleware.Cart(c)
		notice := m.RemoveFromCart(c.Request.Context(), productID)
		c.JSON(http.StatusOK, cartView(m, notice))
	}
}

// DELETE /cart
func ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		m := middleware.Cart(c)
		notice := m.ClearCart(c.Request.Context())
		c.JSON(http.StatusOK, cartView(m, notice))
	}
}
