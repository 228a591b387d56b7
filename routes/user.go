package routes

import (
	"github.com/gin-gonic/gin"
	accountControllers "github.com/shophub-io/storefront/controllers/account"
	checkoutControllers "github.com/shophub-io/storefront/controllers/checkout"
	orderControllers "github.com/shophub-io/storefront/controllers/orders"
	sellerControllers "github.com/shophub-io/storefront/controllers/seller"
	shopControllers "github.com/shophub-io/storefront/controllers/shop"
	"github.com/shophub-io/storefront/middleware"
)

// SetupUserRoutes registers the endpoints behind the session guard.
// A Loading session gets a retry placeholder, an Anonymous one a
// redirect to /login.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	authed := r.Group("/")
	authed.Use(middleware.RequireAuth())
	{
		// ──────────────── Profile ────────────────
		authed.GET("/profile", accountControllers.GetProfile())
		authed.GET("/products/recommendations", shopControllers.GetRecommendations(deps.API))

		// ──────────────── Checkout Wizard ────────────────
		checkoutGroup := authed.Group("/checkout")
		{
			checkoutGroup.POST("", checkoutControllers.StartCheckout(deps.Checkout, deps.API))
			checkoutGroup.GET("", checkoutControllers.GetCheckout(deps.Checkout))
			checkoutGroup.POST("/contact", checkoutControllers.SubmitContact(deps.Checkout))
			checkoutGroup.POST("/address", checkoutControllers.SubmitAddress(deps.Checkout))
			checkoutGroup.POST("/payment", checkoutControllers.SubmitPayment(deps.Checkout))
			checkoutGroup.POST("/back", checkoutControllers.StepBack(deps.Checkout))
			checkoutGroup.DELETE("", checkoutControllers.AbandonCheckout(deps.Checkout))
		}

		// ──────────────── Orders ────────────────
		orderGroup := authed.Group("/orders")
		{
			orderGroup.GET("", orderControllers.ListOrders(deps.API))
			orderGroup.GET("/:id", orderControllers.GetOrder(deps.API))
			orderGroup.GET("/:id/items", orderControllers.GetOrderItems(deps.API))
			orderGroup.DELETE("/:id", orderControllers.CancelOrder(deps.API))
		}

		// ──────────────── Seller ────────────────
		sellerGroup := authed.Group("/seller")
		{
			sellerGroup.POST("/apply", sellerControllers.SubmitApplication(deps.API))
			sellerGroup.GET("/products", sellerControllers.MyProducts(deps.API))
			sellerGroup.POST("/products", sellerControllers.CreateProduct(deps.API))
			sellerGroup.PUT("/products/:id", sellerControllers.UpdateProduct(deps.API))
			sellerGroup.DELETE("/products/:id", sellerControllers.DeleteProduct(deps.API))
		}
	}
}
