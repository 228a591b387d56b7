package models

// ApprovalStatus values used by the product moderation queue.
const (
	ApprovalPending  = "PENDING"
	ApprovalApproved = "APPROVED"
	ApprovalRejected = "REJECTED"
)

// Product mirrors the backend product DTO. Price is in the major
// currency unit.
type Product struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	Price          float64 `json:"price"`
	Quantity       int     `json:"quantity,omitempty"` // stock on hand
	Category       string  `json:"category,omitempty"`
	Brand          string  `json:"brand,omitempty"`
	ImageURL       string  `json:"imageUrl,omitempty"`
	Rating         float64 `json:"rating,omitempty"`
	ReviewCount    int     `json:"reviewCount,omitempty"`
	SellerID       int64   `json:"sellerId,omitempty"`
	ApprovalStatus string  `json:"approvalStatus,omitempty"`
}

// ProductInput is the payload for product create/update calls.
type ProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Quantity    int     `json:"quantity" binding:"min=0"`
	Category    string  `json:"category" binding:"required"`
	Brand       string  `json:"brand"`
	ImageURL    string  `json:"imageUrl"`
}
