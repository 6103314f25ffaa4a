// Package entity contains the core business objects of the project.
package entity

// Role represents the authorization level of a user account.
type Role string

const (
	// RoleUser indicates a regular user.
	RoleUser Role = "User"
	// RoleAdmin indicates an administrator.
	RoleAdmin Role = "Admin"
	// RoleMod indicates an event moderator.
	RoleMod Role = "Mod"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleMod:
		return true
	default:
		return false
	}
}

// CanEditEvents reports whether the role may edit events.
func (r Role) CanEditEvents() bool {
	return r == RoleAdmin || r == RoleMod
}

// CanDeleteEvents reports whether the role may delete events.
func (r Role) CanDeleteEvents() bool {
	return r == RoleAdmin
}

// RoleFromString converts a raw string into a Role, reporting whether it is valid.
func RoleFromString(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
