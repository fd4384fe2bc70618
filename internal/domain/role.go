package domain

import (
	"fmt"
	"strings"
)

// Role identifies what a caller is allowed to do.
type Role string

// Known roles.
const (
	RoleCustomer Role = "CUSTOMER"
	RoleSponsor  Role = "SPONSOR"
	RoleOwner    Role = "OWNER"
)

// ConversionRoles are the roles allowed to convert currencies unless configured otherwise.
var ConversionRoles = []Role{RoleCustomer, RoleSponsor, RoleOwner}

// ParseRole converts s to a Role, ignoring case and surrounding whitespace.
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	switch role {
	case RoleCustomer, RoleSponsor, RoleOwner:
		return role, nil
	default:
		return "", NewValidationError("role", fmt.Sprintf("has unknown value %q", s), nil)
	}
}

// ParseRoles converts every entry of names, failing on the first unknown one.
func ParseRoles(names []string) ([]Role, error) {
	roles := make([]Role, 0, len(names))
	for _, name := range names {
		role, err := ParseRole(name)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}

func (r Role) String() string {
	return string(r)
}
