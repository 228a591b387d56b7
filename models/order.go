package models

import "time"

// Order statuses surfaced by the backend order lifecycle.
const (
	OrderPending   = "PENDING"
	OrderConfirmed = "CONFIRMED"
	OrderShipped   = "SHIPPED"
	OrderDelivered = "DELIVERED"
	OrderCancelled = "CANCELLED"
)

type Order struct {
	ID              int64       `json:"id"`
	OrderNumber     string      `json:"orderNumber"`
	Status          string      `json:"status"`
	TotalAmount     float64     `json:"totalAmount"`
	TaxAmount       float64     `json:"taxAmount,omitempty"`
	ShippingCost    float64     `json:"shippingCost,omitempty"`
	ShippingAddress string      `json:"shippingAddress,omitempty"`
	PaymentMethod   string      `json:"paymentMethod,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt,omitempty"`
	Items           []OrderItem `json:"items,omitempty"`
}

type OrderItem struct {
	ID              int64   `json:"id,omitempty"`
	ProductID       int64   `json:"productId"`
	ProductName     string  `json:"productName"`
	ProductImageURL string  `json:"productImageUrl,omitempty"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unitPrice"`
	TotalPrice      float64 `json:"totalPrice"`
}

// OrderRequest is the order-creation payload built from the cart at
// checkout completion.
type OrderRequest struct {
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	ShippingAddress string      `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
}

// Tracking is the shipment view returned by the order tracking endpoint.
type Tracking struct {
	OrderNumber string    `json:"orderNumber"`
	Status      string    `json:"status"`
	Carrier     string    `json:"carrier,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}
