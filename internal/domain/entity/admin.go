package entity

import "time"

// AdminRole distinguishes the two back-office privilege levels.
type AdminRole string

const (
	// AdminRoleStandard is a regular back-office administrator.
	AdminRoleStandard AdminRole = "admin"
	// AdminRoleSuper is a super administrator.
	AdminRoleSuper AdminRole = "super_admin"
)

// IsValid checks if the AdminRole is a valid value.
func (r AdminRole) IsValid() bool {
	return r == AdminRoleStandard || r == AdminRoleSuper
}

// AdminIdentity is the authenticated record for the admin role.
// Admins have no self-service registration; records come only from the
// credential directory.
type AdminIdentity struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      AdminRole `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
