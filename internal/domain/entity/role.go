package entity

import "slices"

// Role represents the type of role an operator can have in the system.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleChairman  Role = "chairman"
	RoleSecretary Role = "secretary"
	RoleOperator  Role = "operator"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// Permission names a feature an operator may open.
type Permission string

const (
	// PermissionAll grants every feature.
	PermissionAll Permission = "all"
	// PermissionEmergency guards the emergency broadcast pages.
	PermissionEmergency Permission = "emergency"
)

// Permissions is the set of features granted to a role.
type Permissions []Permission

// Allows checks if the set grants the feature, directly or through PermissionAll.
func (ps Permissions) Allows(p Permission) bool {
	return slices.Contains(ps, PermissionAll) || slices.Contains(ps, p)
}

// PermissionsFromStrings converts configured strings to Permissions.
func PermissionsFromStrings(ss []string) Permissions {
	result := make(Permissions, 0, len(ss))
	for _, s := range ss {
		result = append(result, Permission(s))
	}

	return result
}

// Operator is the authenticated staff member acting on the page.
type Operator struct {
	ID   int64 `json:"id"`
	Role Role  `json:"role"`
}
