package gatelog

import "time"

// RecordType distinguishes who a log entry is about.
type RecordType string

const (
	TypeVisitor RecordType = "Visitor"
	TypeStaff   RecordType = "Staff"
)

// Well-known action labels. Handlers never branch on these; they exist so the
// writers stay consistent.
const (
	ActionRegistered        = "Registered"
	ActionApproved          = "APPROVED"
	ActionRejected          = "REJECTED"
	ActionSecurityOut       = "Security OUT"
	ActionSecurityCompleted = "Security COMPLETED"
	ActionVisitorIn         = "IN"
	ActionVisitorOut        = "OUT"
)

// RetentionLimit caps the audit trail: the store keeps only the most recent
// entries and evicts the oldest on overflow.
const RetentionLimit = 500

// GateLog is one immutable audit record. Timestamp is stamped by the store on
// append.
type GateLog struct {
	ID           string
	Name         string
	EmployeeCode *string
	Type         RecordType
	Action       string
	Details      string
	Timestamp    time.Time
}
