package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	contextCookie    = "shophub_ctx"
	contextCookieAge = int(365 * 24 * time.Hour / time.Second)

	ctxIDKey = "context_id"
)

// BrowserContext assigns every browser a stable context ID, carried in
// a signed cookie. All per-context state (persisted store namespace,
// checkout flow, live search) keys off it.
func BrowserContext(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := ""
		if raw, err := c.Cookie(contextCookie); err == nil {
			id, _ = parseContextToken(raw, secret)
		}

		if id == "" {
			id = uuid.NewString()
			token, err := issueContextToken(id, secret)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to establish browser context"})
				c.Abort()
				return
			}
			c.SetCookie(contextCookie, token, contextCookieAge, "/", "", false, true)
		}

		c.Set(ctxIDKey, id)
		c.Next()
	}
}

// ContextID returns the browser-context ID set by BrowserContext.
func ContextID(c *gin.Context) string {
	return c.GetString(ctxIDKey)
}

func issueContextToken(id, secret string) (string, error) {
	claims := jwt.MapClaims{
		"ctx_id": id,
		"iat":    time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func parseContextToken(raw, secret string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	id, _ := claims["ctx_id"].(string)
	return id, nil
}
