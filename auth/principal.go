package auth

import "errors"

type Role string

const (
	RoleUser          Role = "user"
	RoleAdministrator Role = "administrator"
)

var ErrInvalidRole = errors.New("invalid role")

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdministrator:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

func (p Principal) IsAdministrator() bool {
	return p.Role == RoleAdministrator
}
