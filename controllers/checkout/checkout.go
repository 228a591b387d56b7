package checkoutControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shophub-io/storefront/api"
	"github.com/shophub-io/storefront/checkout"
	"github.com/shophub-io/storefront/middleware"
	"github.com/shophub-io/storefront/models"
)

func fail(c *gin.Context, err error) {
	var vErr *checkout.ValidationError
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{"error": "Your cart is empty", "emptyCart": true})
	case errors.Is(err, checkout.ErrWrongStep), errors.Is(err, checkout.ErrCannotGoBack), errors.Is(err, checkout.ErrFlowCompleted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "This field is required", "field": vErr.Field})
	default:
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
}

func flowView(f *checkout.Flow) gin.H {
	return gin.H{"step": f.Step(), "draft": f.Draft()}
}

// POST /checkout
// Entering with an empty cart short-circuits to an empty-cart notice;
// the wizard is never constructed.
func StartCheckout(registry *checkout.Registry, apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var userID int64
		if user := middleware.Session(c).User(); user != nil {
			userID = user.ID
		}

		flow, err := checkout.NewFlow(middleware.Cart(c), apic, userID)
		if err != nil {
			fail(c, err)
			return
		}
		registry.Put(middleware.ContextID(c), flow)
		c.JSON(http.StatusOK, flowView(flow))
	}
}

// GET /checkout
func GetCheckout(registry *checkout.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		flow := registry.Get(middleware.ContextID(c))
		if flow == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No checkout in progress"})
			return
		}
		c.JSON(http.StatusOK, flowView(flow))
	}
}

// POST /checkout/contact
func SubmitContact(registry *checkout.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		flow, ok := currentFlow(c, registry)
		if !ok {
			return
		}
		var input models.ContactInfo
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := flow.SubmitContact(input); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, flowView(flow))
	}
}

// POST /checkout/address
func SubmitAddress(registry *checkout.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		flow, ok := currentFlow(c, registry)
		if !ok {
			return
		}
		var input models.ShippingAddress
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := flow.SubmitAddress(input); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, flowView(flow))
	}
}

// POST /checkout/payment
// Places the order from this request's cart manager, clears the cart
// and discards the draft. The card details are forwarded nowhere and
// never stored.
func SubmitPayment(registry *checkout.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		flow, ok := currentFlow(c, registry)
		if !ok {
			return
		}
		var input models.PaymentDetails
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := flow.SubmitPayment(c.Request.Context(), middleware.Cart(c), input)
		if err != nil {
			fail(c, err)
			return
		}

		registry.Remove(middleware.ContextID(c))
		c.JSON(http.StatusOK, gin.H{
			"order":    order,
			"redirect": "/order-success",
		})
	}
}

// POST /checkout/back
func StepBack(registry *checkout.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		flow, ok := currentFlow(c, registry)
		if !ok {
			return
		}
		if err := flow.Back(); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, flowView(flow))
	}
}

// DELETE /checkout
func AbandonCheckout(registry *checkout.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		registry.Remove(middleware.ContextID(c))
		c.JSON(http.StatusOK, gin.H{"message": "Checkout abandoned"})
	}
}

func currentFlow(c *gin.Context, registry *checkout.Registry) (*checkout.Flow, bool) {
	flow := registry.Get(middleware.ContextID(c))
	if flow == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No checkout in progress"})
		return nil, false
	}
	return flow, true
}
