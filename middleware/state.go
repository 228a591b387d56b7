package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/shophub-io/storefront/api"
	"github.com/shophub-io/storefront/cart"
	"github.com/shophub-io/storefront/session"
	"github.com/shophub-io/storefront/store"
	"github.com/sirupsen/logrus"
)

const (
	sessionKey = "session"
	cartKey    = "cart"
)

// AttachState restores the session and the cart for the request's
// browser context before any handler runs, and threads the session
// token into the request context so every backend call carries it.
func AttachState(s store.Store, client *api.Client, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		contextID := ContextID(c)

		sess := session.NewManager(s, client, contextID, log)
		// A restore failure leaves the session Loading; guards answer
		// with a retry rather than guessing.
		_ = sess.Restore(c.Request.Context())

		if tok := sess.Token(); tok != "" {
			c.Request = c.Request.WithContext(api.WithToken(c.Request.Context(), tok))
		}

		c.Set(sessionKey, sess)
		c.Set(cartKey, cart.NewManager(c.Request.Context(), s, contextID, log))
		c.Next()
	}
}

// Session returns the request's restored session manager.
func Session(c *gin.Context) *session.Manager {
	return c.MustGet(sessionKey).(*session.Manager)
}

// Cart returns the request's cart/wishlist manager.
func Cart(c *gin.Context) *cart.Manager {
	return c.MustGet(cartKey).(*cart.Manager)
}
