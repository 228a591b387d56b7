package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/shophub-io/storefront/models"
)

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	err := c.get(ctx, "/products", nil, &out)
	return out, err
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	var out models.Product
	if err := c.get(ctx, fmt.Sprintf("/products/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	var out []models.Product
	err := c.get(ctx, "/products/category/"+url.PathEscape(category), nil, &out)
	return out, err
}

func (c *Client) SearchProducts(ctx context.Context, keyword string) ([]models.Product, error) {
	var out []models.Product
	err := c.get(ctx, "/products/search", url.Values{"keyword": {keyword}}, &out)
	return out, err
}

func (c *Client) SearchSuggestions(ctx context.Context, keyword string) ([]models.Product, error) {
	var out []models.Product
	err := c.get(ctx, "/products/search/suggestions", url.Values{"keyword": {keyword}}, &out)
	return out, err
}

func (c *Client) TopRatedProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	err := c.get(ctx, "/products/trending/top-rated", nil, &out)
	return out, err
}

func (c *Client) RecommendedProducts(ctx context.Context, userID int64) ([]models.Product, error) {
	var out []models.Product
	err := c.get(ctx, fmt.Sprintf("/products/recommendations/%d", userID), nil, &out)
	return out, err
}

func (c *Client) CreateProduct(ctx context.Context, input models.ProductInput, userID int64) (*models.Product, error) {
	var out models.Product
	if err := c.post(ctx, "/products", userParam(userID), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, input models.ProductInput, userID int64) (*models.Product, error) {
	var out models.Product
	if err := c.put(ctx, fmt.Sprintf("/products/%d", id), userParam(userID), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id, userID int64) error {
	return c.delete(ctx, fmt.Sprintf("/products/%d", id), userParam(userID))
}

func (c *Client) SellerProducts(ctx context.Context, sellerID, userID int64) ([]models.Product, error) {
	var out []models.Product
	err := c.get(ctx, fmt.Sprintf("/products/seller/%d", sellerID), userParam(userID), &out)
	return out, err
}

// Moderation queue (admin only; the backend enforces it).

func (c *Client) PendingProducts(ctx context.Context, userID int64) ([]models.Product, error) {
	var out []models.Product
	err := c.get(ctx, "/products/pending", userParam(userID), &out)
	return out, err
}

func (c *Client) ApproveProduct(ctx context.Context, id, adminID int64) (*models.Product, error) {
	var out models.Product
	if err := c.put(ctx, fmt.Sprintf("/products/%d/approve", id), url.Values{"adminId": {formatID(adminID)}}, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RejectProduct(ctx context.Context, id, adminID int64) (*models.Product, error) {
	var out models.Product
	if err := c.put(ctx, fmt.Sprintf("/products/%d/reject", id), url.Values{"adminId": {formatID(adminID)}}, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func userParam(userID int64) url.Values {
	if userID == 0 {
		return nil
	}
	return url.Values{"userId": {formatID(userID)}}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
