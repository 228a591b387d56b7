package pageControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Static informational content served to the storefront. The copy
// lives here rather than in the backend so the pages stay up even
// when the API is unreachable.

type page struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

var pages = map[string]page{
	"contact": {
		Title: "Contact Us",
		Body:  "Reach our support team at support@shophub.example or call 1-800-SHOPHUB, Monday to Friday, 9am to 6pm.",
	},
	"help": {
		Title: "Help Center",
		Body:  "Browse frequently asked questions about ordering, payments, shipping and returns.",
	},
	"shipping": {
		Title: "Shipping Information",
		Body:  "Standard delivery takes 3-5 business days. Express delivery is available at checkout for most regions.",
	},
	"returns": {
		Title: "Returns & Refunds",
		Body:  "Items can be returned within 30 days of delivery. Refunds are issued to the original payment method.",
	},
	"terms": {
		Title: "Terms of Service",
		Body:  "By using ShopHub you agree to our terms of service governing purchases, accounts and acceptable use.",
	},
	"privacy": {
		Title: "Privacy Policy",
		Body:  "We only store the data needed to fulfil your orders and never sell personal information to third parties.",
	},
	"cookies": {
		Title: "Cookie Policy",
		Body:  "ShopHub uses a single session cookie to keep your cart and sign-in state. No tracking cookies are set.",
	},
}

// Page serves the named informational page.
func Page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := pages[name]
		if !ok {
			NotFound()(c)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// GET /order-success
func OrderSuccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"title":   "Order Placed",
			"message": "Thank you for your purchase! You can follow your delivery from the Orders page.",
		})
	}
}

// NotFound is the fallback for unknown routes.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
	}
}
