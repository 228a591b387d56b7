package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shophub-io/storefront/api"
	"github.com/shophub-io/storefront/models"
)

type statusInput struct {
	Status string `json:"status" binding:"required"`
}

var orderStatuses = map[string]bool{
	models.OrderPending:   true,
	models.OrderConfirmed: true,
	models.OrderShipped:   true,
	models.OrderDelivered: true,
	models.OrderCancelled: true,
}

// PUT /admin/orders/:id/status
func UpdateOrderStatus(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var input statusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
			return
		}
		if !orderStatuses[input.Status] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status"})
			return
		}

		order, err := apic.UpdateOrderStatus(c.Request.Context(), id, input.Status)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
