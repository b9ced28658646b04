// Package entity contains the core business objects of the project.
package entity

// Role represents the type of session a person can hold in the system.
type Role string

const (
	// RoleCustomer indicates a regular cashback customer session.
	RoleCustomer Role = "customer"
	// RoleMerchant indicates a merchant (partner store) session.
	RoleMerchant Role = "merchant"
	// RoleAdmin indicates a back-office administrator session.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleMerchant, RoleAdmin:
		return true
	default:
		return false
	}
}

// LoginPath returns the login route an unauthenticated request for this role
// is redirected to.
func (r Role) LoginPath() string {
	switch r {
	case RoleMerchant:
		return "/merchant/login"
	case RoleAdmin:
		return "/admin/login"
	default:
		return "/login"
	}
}
