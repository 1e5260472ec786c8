package settings

import "errors"

var (
	ErrDepartmentExists   = errors.New("Department already exists")
	ErrDepartmentNotFound = errors.New("Department not found")
	ErrLastDepartment     = errors.New("At least one department must remain")
	ErrInvalidTheme       = errors.New("Theme must be light or dark")
)
