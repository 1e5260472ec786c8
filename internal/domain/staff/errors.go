package staff

import "errors"

var (
	ErrStaffEntryNotFound = errors.New("Staff entry not found")
	ErrInvalidDecision    = errors.New("Decision must be APPROVED or REJECTED")
	ErrUnknownDepartment  = errors.New("Department is not configured")
)
