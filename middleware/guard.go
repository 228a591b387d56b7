package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shophub-io/storefront/models"
	"github.com/shophub-io/storefront/session"
)

// RequireAuth gates a route on an authenticated session. While the
// session is still Loading it answers with a retry placeholder, never
// the guarded content and never a redirect.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := Session(c)
		switch sess.State() {
		case session.Loading:
			c.Header("Retry-After", "1")
			c.JSON(http.StatusServiceUnavailable, gin.H{"loading": true})
			c.Abort()
		case session.Anonymous:
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
		default:
			c.Next()
		}
	}
}

// RequireAdmin gates a route on the ADMIN role. A non-admin gets an
// access-denied payload naming their actual role, not a redirect. The
// check is advisory; the backend re-validates every privileged call.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := Session(c)
		if sess.State() == session.Loading {
			c.Header("Retry-After", "1")
			c.JSON(http.StatusServiceUnavailable, gin.H{"loading": true})
			c.Abort()
			return
		}
		if !sess.IsAuthenticated() {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if user := sess.User(); user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": fmt.Sprintf("Only administrators can access this page. Your current role is %q.", user.Role),
				"role":  user.Role,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
