package staff

import (
	"context"
	"time"
)

// StaffRepository - interface for the staff_entries table.
//
// The conditional mutations (ApplyDecision, RecordExit, RecordReturn) are
// atomic read-modify-writes keyed by identifier: the row only changes when it
// is still in the expected status, and the boolean result reports whether the
// transition was applied. A false result with a nil error means the entry was
// in some other status and the call was a no-op, which keeps retried calls
// idempotent.
type StaffRepository interface {
	Create(ctx context.Context, entry StaffEntry) (StaffEntry, error)
	GetByID(ctx context.Context, id string) (StaffEntry, error)

	// ApplyDecision moves a PENDING entry to APPROVED or REJECTED. ApprovedAt
	// is stamped only for approvals.
	ApplyDecision(ctx context.Context, id string, decision Status, decidedAt time.Time) (bool, error)
	// RecordExit moves an APPROVED entry to OUT and stamps the out time.
	RecordExit(ctx context.Context, id string, at time.Time) (bool, error)
	// RecordReturn moves an OUT entry to COMPLETED and stamps the in time.
	RecordReturn(ctx context.Context, id string, at time.Time) (bool, error)

	// ListPending returns PENDING entries, newest first.
	ListPending(ctx context.Context) ([]StaffEntry, error)
	// ListDirectory returns APPROVED, OUT and COMPLETED entries, newest first.
	ListDirectory(ctx context.Context) ([]StaffEntry, error)
	// ListActive returns APPROVED and OUT entries for the overdue sweep.
	ListActive(ctx context.Context) ([]StaffEntry, error)
	// ListByDate returns entries submitted on the given calendar day.
	ListByDate(ctx context.Context, day time.Time) ([]StaffEntry, error)

	CountByStatus(ctx context.Context, status Status) (int64, error)

	MarkOverdueAlerted(ctx context.Context, id string) error
}
