package models

import "time"

// Seller application statuses.
const (
	ApplicationPending  = "PENDING"
	ApplicationApproved = "APPROVED"
	ApplicationRejected = "REJECTED"
)

type SellerApplication struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	BusinessName    string    `json:"businessName"`
	BusinessType    string    `json:"businessType,omitempty"`
	GSTNumber       string    `json:"gstNumber,omitempty"`
	BusinessAddress string    `json:"businessAddress,omitempty"`
	Status          string    `json:"status"`
	AdminNotes      string    `json:"adminNotes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt,omitempty"`
}

// SellerApplicationInput is the onboarding form payload.
type SellerApplicationInput struct {
	BusinessName    string `json:"businessName" binding:"required"`
	BusinessType    string `json:"businessType"`
	GSTNumber       string `json:"gstNumber"`
	BusinessAddress string `json:"businessAddress" binding:"required"`
}
