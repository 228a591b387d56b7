package models

// ContactInfo is step 1 of the checkout wizard.
type ContactInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// ShippingAddress is step 2.
type ShippingAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// PaymentDetails is step 3. Never persisted.
type PaymentDetails struct {
	CardNumber string `json:"cardNumber"`
	CardName   string `json:"cardName"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// CheckoutDraft is the wizard's working state. It exists only for the
// duration of the flow and is discarded on completion or abandonment.
type CheckoutDraft struct {
	Step    int             `json:"step"`
	Contact ContactInfo     `json:"contact"`
	Address ShippingAddress `json:"address"`
	Payment PaymentDetails  `json:"-"`
}
