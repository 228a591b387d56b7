package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/shophub-io/storefront/controllers/cart"
	orderControllers "github.com/shophub-io/storefront/controllers/orders"
	pageControllers "github.com/shophub-io/storefront/controllers/pages"
	shopControllers "github.com/shophub-io/storefront/controllers/shop"
)

// SetupShopRoutes registers the public storefront endpoints. The cart
// and wishlist are per browser context, so guests get them too.
func SetupShopRoutes(r *gin.Engine, deps Deps) {
	// ──────────────── Catalog ────────────────
	r.GET("/products", shopControllers.GetProducts(deps.API))
	r.GET("/products/:id", shopControllers.GetProductByID(deps.API))
	r.GET("/products/category/:category", shopControllers.GetProductsByCategory(deps.API))
	r.GET("/products/trending/top-rated", shopControllers.GetTopRated(deps.API))

	// ──────────────── Search Suggestions ────────────────
	r.GET("/products/search/suggestions", shopControllers.GetSearchSuggestions(deps.API)) // GET fallback
	r.GET("/ws/search", shopControllers.LiveSearch(deps.API, deps.Log))                   // debounced live search

	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartControllers.GetCart())                       // GET /cart
		cartGroup.POST("", cartControllers.AddCartItem(deps.API))          // POST /cart
		cartGroup.PUT("/:product_id", cartControllers.UpdateCartItem())    // PUT /cart/:product_id
		cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem()) // DELETE /cart/:product_id
		cartGroup.DELETE("", cartControllers.ClearCart())                  // DELETE /cart
	}

	// ──────────────── Wishlist ────────────────
	wishlistGroup := r.Group("/wishlist")
	{
		wishlistGroup.GET("", cartControllers.GetWishlist())                       // GET /wishlist
		wishlistGroup.POST("", cartControllers.AddWishlistItem(deps.API))          // POST /wishlist
		wishlistGroup.DELETE("/:product_id", cartControllers.DeleteWishlistItem()) // DELETE /wishlist/:product_id
	}

	// ──────────────── Order Tracking ────────────────
	r.GET("/track-order", orderControllers.TrackOrder(deps.API)) // GET /track-order?number=

	// ──────────────── Informational Pages ────────────────
	for _, name := range []string{"contact", "help", "shipping", "returns", "terms", "privacy", "cookies"} {
		r.GET("/pages/"+name, pageControllers.Page(name))
	}
	r.GET("/pages/faq", pageControllers.Page("help")) // /faq is an alias for the help center
	r.GET("/order-success", pageControllers.OrderSuccess())
}
