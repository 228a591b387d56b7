package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shophub-io/storefront/models"
)

func (c *Client) CreateOrder(ctx context.Context, userID int64, req models.OrderRequest) (*models.Order, error) {
	var out models.Order
	if err := c.post(ctx, "/orders", userParam(userID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListOrders(ctx context.Context, userID int64) ([]models.Order, error) {
	var out []models.Order
	err := c.get(ctx, "/orders", userParam(userID), &out)
	return out, err
}

func (c *Client) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	var out models.Order
	if err := c.get(ctx, fmt.Sprintf("/orders/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) OrderItems(ctx context.Context, id int64) ([]models.OrderItem, error) {
	var out []models.OrderItem
	err := c.get(ctx, fmt.Sprintf("/orders/%d/items", id), nil, &out)
	return out, err
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status string) (*models.Order, error) {
	var out models.Order
	if err := c.put(ctx, fmt.Sprintf("/orders/%d/status", id), url.Values{"status": {status}}, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TrackOrder(ctx context.Context, orderNumber string) (*models.Tracking, error) {
	var out models.Tracking
	if err := c.get(ctx, "/orders/track/"+url.PathEscape(orderNumber), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CancelOrder(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/orders/%d", id), nil)
}
