package orderControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shophub-io/storefront/api"
	"github.com/shophub-io/storefront/middleware"
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

// GET /orders (authenticated)
func ListOrders(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.Session(c).User()
		orders, err := apic.ListOrders(c.Request.Context(), user.ID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:id (authenticated)
func GetOrder(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderIDParam(c)
		if !ok {
			return
		}
		order, err := apic.GetOrder(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /orders/:id/items (authenticated)
func GetOrderItems(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderIDParam(c)
		if !ok {
			return
		}
		items, err := apic.OrderItems(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// DELETE /orders/:id (authenticated)
func CancelOrder(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderIDParam(c)
		if !ok {
			return
		}
		if err := apic.CancelOrder(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
	}
}

// GET /track-order?number=
// Public: tracking needs only the order number, no session.
func TrackOrder(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		number := strings.TrimSpace(c.Query("number"))
		if number == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order number is required"})
			return
		}
		tracking, err := apic.TrackOrder(c.Request.Context(), number)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, tracking)
	}
}

func orderIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return 0, false
	}
	return id, true
}
