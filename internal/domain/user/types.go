package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is the authorization level attached to a token. User management
// itself lives in an external service; the scheduling core only needs to
// tell operators apart from regular users.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}
