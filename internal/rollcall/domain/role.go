package domain

import (
	"fmt"
	"strings"
)

// Role is the portal a user may authenticate into. The authoritative copy
// lives in the role store keyed by user id; anything else (session claims,
// device cache) is a routing hint.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// ParseRole validates a wire-level role value, failing fast on anything
// outside the known set rather than letting an opaque string propagate.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleEmployee:
		return RoleEmployee, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) String() string { return string(r) }

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleAdmin
}
