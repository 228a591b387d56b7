package routes

import (
	"github.com/gin-gonic/gin"
	accountControllers "github.com/shophub-io/storefront/controllers/account"
)

// SetupAccountRoutes registers sign-in, registration and session
// inspection endpoints. None of them are guarded; they are how a
// visitor becomes authenticated in the first place.
func SetupAccountRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", accountControllers.Login())
		authGroup.POST("/register", accountControllers.Register())
		authGroup.POST("/forgot-password", accountControllers.ForgotPassword(deps.API))
		authGroup.POST("/reset-password/:token", accountControllers.ResetPassword(deps.API))
	}

	r.POST("/logout", accountControllers.Logout())
	r.GET("/session", accountControllers.GetSession())
}
