package model

// RegisteredUser is one entry in the persisted sign-up list. The demo
// deliberately stores no password and does not deduplicate entries.
type RegisteredUser struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}
