package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/shophub-io/storefront/controllers/admin"
	"github.com/shophub-io/storefront/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints behind the role
// guard. A non-admin gets a 403 naming their role; the backend still
// re-checks every call.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin())
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", adminController.CreateProduct(deps.API))
			productAdmin.PUT("/:id", adminController.UpdateProduct(deps.API))
			productAdmin.DELETE("/:id", adminController.DeleteProduct(deps.API))
			productAdmin.GET("/export", adminController.ExportProducts(deps.API))
		}

		// ─────────── Product Moderation ───────────
		adminGroup.GET("/products/pending", adminController.PendingProducts(deps.API))
		adminGroup.PUT("/products/:id/approve", adminController.ApproveProduct(deps.API))
		adminGroup.PUT("/products/:id/reject", adminController.RejectProduct(deps.API))

		// ─────────── Order Management ───────────
		adminGroup.PUT("/orders/:id/status", adminController.UpdateOrderStatus(deps.API))

		// ─────────── Seller Applications ───────────
		appAdmin := adminGroup.Group("/seller-applications")
		{
			appAdmin.GET("", adminController.ListSellerApplications(deps.API))
			appAdmin.GET("/pending", adminController.PendingSellerApplications(deps.API))
			appAdmin.PUT("/:id/approve", adminController.ApproveSellerApplication(deps.API))
			appAdmin.PUT("/:id/reject", adminController.RejectSellerApplication(deps.API))
		}
	}
}
