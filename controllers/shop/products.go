package shopControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shophub-io/storefront/api"
	"github.com/shophub-io/storefront/middleware"
)

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

// GET /products
// Optional ?search= filters by keyword, matching the listing page the
// search bar navigates to.
func GetProducts(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if keyword := strings.TrimSpace(c.Query("search")); keyword != "" {
			products, err := apic.SearchProducts(c.Request.Context(), keyword)
			if err != nil {
				fail(c, err)
				return
			}
			c.JSON(http.StatusOK, products)
			return
		}

		products, err := apic.ListProducts(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/:id
func GetProductByID(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		product, err := apic.GetProduct(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GET /products/category/:category
func GetProductsByCategory(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := apic.ProductsByCategory(c.Request.Context(), c.Param("category"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/search/suggestions?keyword=
// The non-live fallback for the search box: same minimum length and
// cap as the websocket path.
func GetSearchSuggestions(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		keyword := strings.TrimSpace(c.Query("keyword"))
		if len(keyword) < 2 {
			c.JSON(http.StatusOK, gin.H{"suggestions": []interface{}{}})
			return
		}

		suggestions, err := apic.SearchSuggestions(c.Request.Context(), keyword)
		if err != nil {
			// A failed fetch clears the list; suggestions are a
			// non-critical affordance.
			c.JSON(http.StatusOK, gin.H{"suggestions": []interface{}{}})
			return
		}
		if len(suggestions) > 5 {
			suggestions = suggestions[:5]
		}
		c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
	}
}

// GET /products/trending/top-rated
func GetTopRated(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := apic.TopRatedProducts(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/recommendations (authenticated)
func GetRecommendations(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.Session(c).User()
		products, err := apic.RecommendedProducts(c.Request.Context(), user.ID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
