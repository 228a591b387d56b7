package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shophub-io/storefront/api"
	"github.com/shophub-io/storefront/cart"
	"github.com/shophub-io/storefront/middleware"
)

type wishlistInput struct {
	ProductID int64 `json:"productId" binding:"required"`
}

func wishlistView(m *cart.Manager, notice cart.Notice) gin.H {
	resp := gin.H{"items": m.Wishlist()}
	if notice.Message != "" {
		resp["notice"] = notice
	}
	return resp
}

// GET /wishlist
func GetWishlist() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, wishlistView(middleware.Cart(c), cart.Notice{}))
	}
}

// POST /wishlist
func AddWishlistItem(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input wishlistInput
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
		notice := m.AddToWishlist(c.Request.Context(), *product)
		c.JSON(http.StatusOK, wishlistView(m, notice))
	}
}

// DELETE /wishlist/:product_id
func DeleteWishlistItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := productIDParam(c)
		if !ok {
			return
		}
		m := middleware.Cart(c)
		notice := m.RemoveFromWishlist(c.Request.Context(), productID)
		c.JSON(http.StatusOK, wishlistView(m, notice))
	}
}

func productIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return 0, false
	}
	return id, true
}
