package domain

type Role string

const (
	// Regular employees. This is the default for new signups.
	RoleUser Role = "user"
	// Admins manage employees, departments, leave approvals and announcements.
	RoleAdmin Role = "admin"
)

func IsValidRole(r string) bool {
	return r == string(RoleUser) || r == string(RoleAdmin)
}
