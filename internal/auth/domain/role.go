package domain

// Role is the enumerated account role. Authorization goes through Allows
// rather than string comparisons scattered across handlers.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Permission names an action a role may or may not perform.
type Permission int

const (
	PermViewMetrics Permission = iota
	PermManageUsers
)

func (r Role) Allows(p Permission) bool {
	switch p {
	case PermViewMetrics, PermManageUsers:
		return r == RoleAdmin
	}
	return false
}
