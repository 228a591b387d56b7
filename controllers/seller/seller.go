package sellerControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shophub-io/storefront/api"
	"github.com/shophub-io/storefront/middleware"
	"github.com/shophub-io/storefront/models"
)

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

// POST /seller/apply (authenticated)
func SubmitApplication(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.SellerApplicationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user := middleware.Session(c).User()
		app, err := apic.CreateSellerApplication(c.Request.Context(), user.ID, input)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, app)
	}
}

// GET /seller/products (authenticated, seller)
// The backend scopes the listing to the seller and includes products
// still pending moderation.
func MyProducts(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.Session(c).User()
		products, err := apic.SellerProducts(c.Request.Context(), user.ID, user.ID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// POST /seller/products (authenticated, seller)
func CreateProduct(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user := middleware.Session(c).User()
		product, err := apic.CreateProduct(c.Request.Context(), input, user.ID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /seller/products/:id (authenticated, seller)
func UpdateProduct(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var input models.ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user := middleware.Session(c).User()
		product, err := apic.UpdateProduct(c.Request.Context(), id, input, user.ID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /seller/products/:id (authenticated, seller)
func DeleteProduct(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		user := middleware.Session(c).User()
		if err := apic.DeleteProduct(c.Request.Context(), id, user.ID); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return 0, false
	}
	return id, true
}
