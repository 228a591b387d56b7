package accountControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shophub-io/storefront/api"
	"github.com/shophub-io/storefront/middleware"
	"github.com/shophub-io/storefront/models"
)

type loginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerInput struct {
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName"`
	Email           string `json:"email" binding:"required"`
	PhoneNumber     string `json:"phoneNumber"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

func fail(c *gin.Context, err error) {
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

// POST /auth/login
func Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input loginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}
		if !validEmail(input.Email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid email address", "field": "email"})
			return
		}

		resp, err := middleware.Session(c).Login(c.Request.Context(), input.Email, input.Password)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// POST /auth/register
// All validation resolves before any network call is issued.
func Register() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input registerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if field, msg := validateRegistration(input); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg, "field": field})
			return
		}

		resp, err := middleware.Session(c).Register(c.Request.Context(), models.RegisterInput{
			Email:       input.Email,
			FirstName:   input.FirstName,
			LastName:    input.LastName,
			PhoneNumber: input.PhoneNumber,
		}, input.Password)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// POST /logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.Session(c).Logout(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// GET /profile (authenticated)
func GetProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, middleware.Session(c).User())
	}
}

// GET /session
// Lets a thin client render header state (login button vs avatar,
// cart badge) in one round trip.
func GetSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Session(c)
		resp := gin.H{
			"state":     sess.State().String(),
			"cartCount": middleware.Cart(c).CartCount(),
		}
		if sess.IsAuthenticated() {
			resp["user"] = sess.User()
		}
		c.JSON(http.StatusOK, resp)
	}
}

// POST /auth/forgot-password
func ForgotPassword(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email string `json:"email" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil || !validEmail(input.Email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid email address", "field": "email"})
			return
		}

		if err := apic.ForgotPassword(c.Request.Context(), input.Email); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "If the email exists, a reset link has been sent"})
	}
}

// POST /auth/reset-password/:token
func ResetPassword(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Password        string `json:"password" binding:"required"`
			ConfirmPassword string `json:"confirmPassword" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password and confirmation are required"})
			return
		}
		if len(input.Password) < minPasswordLength {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters", "field": "password"})
			return
		}
		if input.Password != input.ConfirmPassword {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match", "field": "confirmPassword"})
			return
		}

		if err := apic.ResetPassword(c.Request.Context(), c.Param("token"), input.Password); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password has been reset"})
	}
}
