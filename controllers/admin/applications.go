package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shophub-io/storefront/api"
)

type moderationInput struct {
	Notes string `json:"notes"`
}

// bindModeration reads the optional notes body. No body at all is
// fine; a body that is not valid JSON is rejected.
func bindModeration(c *gin.Context) (moderationInput, bool) {
	var input moderationInput
	if c.Request.ContentLength == 0 {
		return input, true
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return input, false
	}
	return input, true
}

// GET /admin/seller-applications
func ListSellerApplications(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		apps, err := apic.ListSellerApplications(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, apps)
	}
}

// GET /admin/seller-applications/pending
func PendingSellerApplications(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		apps, err := apic.PendingSellerApplications(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, apps)
	}
}

// PUT /admin/seller-applications/:id/approve
func ApproveSellerApplication(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		input, ok := bindModeration(c)
		if !ok {
			return
		}

		app, err := apic.ApproveSellerApplication(c.Request.Context(), id, adminID(c), input.Notes)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, app)
	}
}

// PUT /admin/seller-applications/:id/reject
func RejectSellerApplication(apic *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		input, ok := bindModeration(c)
		if !ok {
			return
		}

		app, err := apic.RejectSellerApplication(c.Request.Context(), id, adminID(c), input.Notes)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, app)
	}
}
