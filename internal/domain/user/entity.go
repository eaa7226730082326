package user

import "time"

type Role string

const (
	RoleOwner   Role = "owner"   // Shop owner - full access, settlement authority
	RoleManager Role = "manager" // Can run day-to-day CRUD
)

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsOwner checks if user is the shop owner
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}

// IsManager checks if user is manager or owner
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleOwner
}
