package adminController

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

func adminID(c *gin.Context) int64 {
	return middleware.Session(c).User().ID
}

// GET /admin/products/pending
func PendingProducts(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := apic.PendingProducts(c.Request.Context(), adminID(c))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// PUT /admin/products/:id/approve
func ApproveProduct(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		product, err := apic.ApproveProduct(c.Request.Context(), id, adminID(c))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// PUT /admin/products/:id/reject
func RejectProduct(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		product, err := apic.RejectProduct(c.Request.Context(), id, adminID(c))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// POST /admin/products
func CreateProduct(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		product, err := apic.CreateProduct(c.Request.Context(), input, adminID(c))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /admin/products/:id
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
		product, err := apic.UpdateProduct(c.Request.Context(), id, input, adminID(c))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /admin/products/:id
func DeleteProduct(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := apic.DeleteProduct(c.Request.Context(), id, adminID(c)); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return id, true
}
