package models

import "time"

// User roles as carried in the session token.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the profile record returned by the backend.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin reports whether the user may manage published draw results.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
