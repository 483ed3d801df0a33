package domain

import "time"

// Role is the authorization level of a principal.
type Role string

const (
	RoleUser   Role = "USER"
	RoleTeller Role = "TELLER"
	RoleAdmin  Role = "ADMIN"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleTeller, RoleAdmin:
		return true
	}
	return false
}

// Principal is the authenticated actor on whose behalf an operation executes.
// CustomerID and CustomerEmail are empty for staff without a customer profile.
type Principal struct {
	UserID        string `json:"userID"`
	Email         string `json:"email"`
	Role          Role   `json:"role"`
	CustomerID    string `json:"customerID,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`
}

// HasCustomer reports whether the principal is linked to an account-owning customer.
func (p Principal) HasCustomer() bool {
	return p.CustomerID != ""
}

// User is the credential record behind a principal.
type User struct {
	UserID       string    `json:"userID"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CustomerID   *string   `json:"customerID,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Customer is the owner of one or more accounts.
type Customer struct {
	CustomerID string    `json:"customerID"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"createdAt"`
}
