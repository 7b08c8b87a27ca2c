package models

// Role identifies one of the two participants sharing the tracker.
type Role string

const (
	RoleHusband Role = "Husband"
	RoleWife    Role = "Wife"
)

// Roles lists the participants in display order.
var Roles = []Role{RoleHusband, RoleWife}

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleHusband || r == RoleWife
}
