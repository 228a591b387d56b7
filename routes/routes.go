package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shophub-io/storefront/api"
	"github.com/shophub-io/storefront/checkout"
	"github.com/shophub-io/storefront/config"
	pageControllers "github.com/shophub-io/storefront/controllers/pages"
	"github.com/shophub-io/storefront/middleware"
	"github.com/shophub-io/storefront/store"
	"github.com/sirupsen/logrus"
)

// Deps holds everything the route handlers need. Built once in main.
type Deps struct {
	Config   *config.Config
	Store    store.Store
	API      *api.Client
	Checkout *checkout.Registry
	Log      *logrus.Logger
}

// SetupRoutes is the single entry point that wires up all route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Every route runs under a browser context: the signed cookie that
	// keys the per-visitor cart, wishlist and session state.
	r.Use(middleware.BrowserContext(deps.Config.JWTSecret))
	r.Use(middleware.AttachState(deps.Store, deps.API, deps.Log))

	// Public storefront routes (no guard)
	SetupShopRoutes(r, deps)

	// Account and session routes
	SetupAccountRoutes(r, deps)

	// Authenticated routes (session guard)
	SetupUserRoutes(r, deps)

	// Admin routes (role guard)
	SetupAdminRoutes(r, deps)

	r.NoRoute(pageControllers.NotFound())
}
