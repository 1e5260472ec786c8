package user

import "errors"

var (
	ErrUserNotFound          = errors.New("User not found")
	ErrUsernameExists        = errors.New("Username already taken")
	ErrInvalidRole           = errors.New("Invalid role")
	ErrAdminAccessRequired   = errors.New("Admin access required")
	ErrHRAccessRequired      = errors.New("HR access required")
	ErrSecurityAccessRequired = errors.New("Security access required")
)
