package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shophub-io/storefront/models"
)

func (c *Client) CreateSellerApplication(ctx context.Context, userID int64, input models.SellerApplicationInput) (*models.SellerApplication, error) {
	var out models.SellerApplication
	if err := c.post(ctx, "/seller-applications", userParam(userID), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListSellerApplications(ctx context.Context) ([]models.SellerApplication, error) {
	var out []models.SellerApplication
	err := c.get(ctx, "/seller-applications", nil, &out)
	return out, err
}

func (c *Client) PendingSellerApplications(ctx context.Context) ([]models.SellerApplication, error) {
	var out []models.SellerApplication
	err := c.get(ctx, "/seller-applications/pending", nil, &out)
	return out, err
}

func (c *Client) ApproveSellerApplication(ctx context.Context, id, adminID int64, notes string) (*models.SellerApplication, error) {
	return c.moderateApplication(ctx, id, "approve", adminID, notes)
}

func (c *Client) RejectSellerApplication(ctx context.Context, id, adminID int64, notes string) (*models.SellerApplication, error) {
	return c.moderateApplication(ctx, id, "reject", adminID, notes)
}

func (c *Client) moderateApplication(ctx context.Context, id int64, verdict string, adminID int64, notes string) (*models.SellerApplication, error) {
	query := url.Values{"adminId": {formatID(adminID)}}
	if notes != "" {
		query.Set("notes", notes)
	}
	var out models.SellerApplication
	if err := c.put(ctx, fmt.Sprintf("/seller-applications/%d/%s", id, verdict), query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
