package models

// CartLine is one product-and-quantity pair in the shopping cart. The
// product fields are a snapshot taken when the line was created; a
// product ID appears at most once per cart.
type CartLine struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl,omitempty"`
	Category  string  `json:"category,omitempty"`
	Quantity  int     `json:"quantity"`
}

// WishlistEntry is a saved-for-later product snapshot. No quantity; a
// product ID appears at most once per wishlist.
type WishlistEntry struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl,omitempty"`
	Category  string  `json:"category,omitempty"`
}
