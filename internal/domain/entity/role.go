package entity

import (
	"fmt"
	"slices"
)

// Role is an access-token role claim.
type Role string

const (
	// RoleUser is granted to every app account.
	RoleUser Role = "user"
	// RoleOperator may trigger the background jobs on demand.
	RoleOperator Role = "operator"
)

var knownRoles = []Role{RoleUser, RoleOperator}

func (r Role) IsValid() bool {
	return slices.Contains(knownRoles, r)
}

// Roles is the role set carried by a token.
type Roles []Role

// Strings returns the claim form of the roles.
func (rs Roles) Strings() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}

	return out
}

// ParseRoles rejects unknown role names.
func ParseRoles(names []string) (Roles, error) {
	roles := make(Roles, 0, len(names))
	for _, name := range names {
		role := Role(name)
		if !role.IsValid() {
			return nil, fmt.Errorf("unknown role %q", name)
		}
		if !slices.Contains(roles, role) {
			roles = append(roles, role)
		}
	}

	return roles, nil
}

// HasRole reports whether the claim names grant role.
func HasRole(names []string, role Role) bool {
	return role.IsValid() && slices.Contains(names, string(role))
}
