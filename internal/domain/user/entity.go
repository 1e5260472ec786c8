package user

import "time"

type Role string

const (
	RoleAdmin     Role = "ADMIN"      // Full access, manages settings and accounts
	RoleHR        Role = "HR"         // Decides gate pass requests
	RoleSecurity  Role = "SECURITY"   // Records gate movement and visitors
	RoleStaffUser Role = "STAFF_USER" // Submits gate pass requests
)

// AllRoles returns every account role the terminal supports.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleHR, RoleSecurity, RoleStaffUser}
}

func IsValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleHR, RoleSecurity, RoleStaffUser:
		return true
	}
	return false
}

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	Department   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the account has full access.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanDecide checks if the role may approve or reject gate pass requests.
func (r Role) CanDecide() bool {
	return r == RoleHR || r == RoleAdmin
}

// CanRecordMovement checks if the role may record gate movement.
func (r Role) CanRecordMovement() bool {
	return r == RoleSecurity || r == RoleAdmin
}

// CanDecide checks if the account may approve or reject gate pass requests.
func (u *User) CanDecide() bool {
	return u.Role.CanDecide()
}

// CanRecordMovement checks if the account may record gate movement.
func (u *User) CanRecordMovement() bool {
	return u.Role.CanRecordMovement()
}
