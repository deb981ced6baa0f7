// Package auth holds the mock credential checks. Validation is purely
// about format: nothing is verified against a real identity system and
// no password is ever stored.
package auth

import (
	"regexp"
	"strings"

	"github.com/cradlecare/cradle/internal/model"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	msgInvalidEmail  = "Invalid email format"
	msgShortPassword = "Password must be at least 8 characters"
	msgNameRequired  = "Full name is required"
	msgConfirm       = "Passwords do not match"
	msgRole          = "Select a role"
)

// FieldErrors maps form field names to user-facing messages. Empty
// means the form passed validation.
type FieldErrors map[string]string

func (e FieldErrors) OK() bool { return len(e) == 0 }

type LoginForm struct {
	Email    string
	Password string
	Role     model.Role
}

func (f LoginForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if !emailRe.MatchString(f.Email) {
		errs["email"] = msgInvalidEmail
	}
	if len(f.Password) < 8 {
		errs["password"] = msgShortPassword
	}
	if !f.Role.Valid() {
		errs["role"] = msgRole
	}
	return errs
}

type RegisterForm struct {
	FullName string
	Email    string
	Password string
	Confirm  string
	Role     model.Role
}

func (f RegisterForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.FullName) == "" {
		errs["fullName"] = msgNameRequired
	}
	if !emailRe.MatchString(f.Email) {
		errs["email"] = msgInvalidEmail
	}
	if len(f.Password) < 8 {
		errs["password"] = msgShortPassword
	}
	if f.Confirm != f.Password {
		errs["confirm"] = msgConfirm
	}
	if !f.Role.Valid() {
		errs["role"] = msgRole
	}
	return errs
}
