package user

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"  // Full dashboard access
	RoleViewer Role = "viewer" // Reports only
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleViewer
}

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
