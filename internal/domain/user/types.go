package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is assigned by the external identity provider; the service never
// creates or mutates accounts itself.
type Role string

const (
	RoleClient Role = "client"
	RoleAgency Role = "agency"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleAgency:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
