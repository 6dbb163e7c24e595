// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role decides what a user may do in the marketplace.
type Role string

const (
	RoleAdmin       Role = "admin"       // reviews offers, manages the catalog and grants authorizations
	RoleProducer    Role = "producer"    // submits weekly supply offers
	RoleSupermarket Role = "supermarket" // browses authorized products and approved offers
)

// DefaultRole is assigned to accounts that do not ask for one.
const DefaultRole = RoleProducer

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return slices.Contains(AllRoles, r)
}

// SelfAssignable reports whether an account may pick r when registering. Admins are appointed.
func (r Role) SelfAssignable() bool {
	return r == RoleProducer || r == RoleSupermarket
}

// AllRoles lists every role.
//
//nolint:gochecknoglobals
var AllRoles = Roles{RoleAdmin, RoleProducer, RoleSupermarket}

// Roles is the set of roles carried by a token.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings is the token claim form of rs.
func (rs Roles) ToStrings() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, string(r))
	}

	return out
}

// RolesFromStrings parses token claims. Unknown roles are dropped.
func RolesFromStrings(ss []string) Roles {
	var roles Roles
	for _, s := range ss {
		if role := Role(s); role.IsValid() {
			roles = append(roles, role)
		}
	}

	return roles
}
