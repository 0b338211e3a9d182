package models

// UserRole represents the access level of a session user
type UserRole string

const (
	RoleAdmin UserRole = "Admin"
	RoleStaff UserRole = "Petugas"
)

// IsValid checks whether the role is a known value
func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleStaff
}

// User represents a session user. It is fabricated at login time and
// carried in the session token; it is never persisted.
type User struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
	FullName string   `json:"fullName"`
}
