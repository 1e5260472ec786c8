package staff

import "time"

// Status is the gate pass lifecycle state.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusOut       Status = "OUT"
	StatusCompleted Status = "COMPLETED"
)

// CanTransitionTo reports whether next is a legal transition from s.
// PENDING may move to APPROVED or REJECTED, APPROVED to OUT, OUT to
// COMPLETED. REJECTED and COMPLETED are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusApproved || next == StatusRejected
	case StatusApproved:
		return next == StatusOut
	case StatusOut:
		return next == StatusCompleted
	}
	return false
}

// IsTerminal reports whether no further transitions are permitted.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

// IsActive reports whether the entry is inside the timed window, i.e. the
// approval clock is running.
func (s Status) IsActive() bool {
	return s == StatusApproved || s == StatusOut
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusOut, StatusCompleted:
		return true
	}
	return false
}

// Purpose is the closed set of reasons a staff member may request a pass for.
type Purpose string

const (
	PurposeOfficeWork Purpose = "Office Work"
	PurposeHome       Purpose = "Home"
	PurposeHalfDay    Purpose = "Half Day"
)

func IsValidPurpose(p Purpose) bool {
	switch p {
	case PurposeOfficeWork, PurposeHome, PurposeHalfDay:
		return true
	}
	return false
}

// StaffEntry is one staff gate pass request/cycle.
//
// Field presence tracks the status: ApprovedAt is set iff the entry is
// APPROVED, OUT or COMPLETED; OutTime iff OUT or COMPLETED; InTime iff
// COMPLETED.
type StaffEntry struct {
	ID           string
	Date         time.Time // calendar day of submission
	Name         string
	EmployeeCode string
	Department   string
	Purpose      Purpose
	Reason       string

	// AllowedDuration is the approved absence window in minutes.
	AllowedDuration int

	NotifySMS   bool
	NotifyEmail bool

	Status      Status
	ApprovedAt  *time.Time
	OutTime     *time.Time
	InTime      *time.Time
	SubmittedAt time.Time

	// OverdueAlertSent marks that the security desk was already mailed about
	// this entry running over its allowance.
	OverdueAlertSent bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
