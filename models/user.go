package models

// User roles as reported by the backend.
const (
	RoleCustomer = "CUSTOMER"
	RoleSeller   = "SELLER"
	RoleAdmin    = "ADMIN"
)

// User is the profile half of a session. The gateway treats the role as
// advisory; the backend re-validates every privileged call.
type User struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	Country     string `json:"country,omitempty"`
	Role        string `json:"role"`
}

// RegisterInput is what the register endpoint forwards to the backend
// (the password travels as a query parameter, matching the backend contract).
type RegisterInput struct {
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// AuthResponse is the credential-exchange result: an opaque bearer token
// plus the user profile.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
