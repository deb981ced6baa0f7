package model

import "errors"

// Role gates which dashboards and fields a session can see.
type Role string

const (
	RoleDoctor Role = "doctor"
	RoleParent Role = "parent"
)

var ErrUnknownRole = errors.New("unknown role")

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleDoctor:
		return RoleDoctor, nil
	case RoleParent:
		return RoleParent, nil
	}
	return "", ErrUnknownRole
}

func (r Role) Valid() bool {
	return r == RoleDoctor || r == RoleParent
}

// Session identifies the user currently authenticated in this browser.
// It is a local convenience record, not a security credential: nothing
// server-side validates it against a real identity system.
type Session struct {
	Email string
	Role  Role
}
