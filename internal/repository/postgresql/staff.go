package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/staff"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepositoryImpl{db: db}
}

const staffColumns = `
	id, date, name, employee_code, department, purpose, reason,
	allowed_duration, notify_sms, notify_email,
	status, approved_at, out_time, in_time, submitted_at,
	overdue_alert_sent, created_at, updated_at
`

func (r *staffRepositoryImpl) Create(ctx context.Context, entry staff.StaffEntry) (staff.StaffEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staff_entries (
			id, date, name, employee_code, department, purpose, reason,
			allowed_duration, notify_sms, notify_email,
			status, submitted_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10,
			$11, $12, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	err := q.QueryRow(ctx, query,
		entry.ID, entry.Date, entry.Name, entry.EmployeeCode, entry.Department, entry.Purpose, entry.Reason,
		entry.AllowedDuration, entry.NotifySMS, entry.NotifyEmail,
		entry.Status, entry.SubmittedAt,
	).Scan(&entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		return staff.StaffEntry{}, err
	}

	return entry, nil
}

func (r *staffRepositoryImpl) GetByID(ctx context.Context, id string) (staff.StaffEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff_entries WHERE id = $1`

	entry, err := scanStaffEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.StaffEntry{}, staff.ErrStaffEntryNotFound
		}
		return staff.StaffEntry{}, err
	}
	return entry, nil
}

// ApplyDecision implements staff.StaffRepository. The WHERE status guard makes
// the transition an atomic compare-and-set: a retried or out-of-order call
// matches zero rows and reports applied=false.
func (r *staffRepositoryImpl) ApplyDecision(ctx context.Context, id string, decision staff.Status, decidedAt time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE staff_entries
		SET status = $2,
			approved_at = CASE WHEN $2 = 'APPROVED' THEN $3 ELSE NULL END,
			updated_at = NOW()
		WHERE id = $1 AND status = 'PENDING'
	`

	tag, err := q.Exec(ctx, query, id, decision, decidedAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *staffRepositoryImpl) RecordExit(ctx context.Context, id string, at time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE staff_entries
		SET status = 'OUT', out_time = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'APPROVED'
	`

	tag, err := q.Exec(ctx, query, id, at)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *staffRepositoryImpl) RecordReturn(ctx context.Context, id string, at time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE staff_entries
		SET status = 'COMPLETED', in_time = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'OUT'
	`

	tag, err := q.Exec(ctx, query, id, at)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *staffRepositoryImpl) ListPending(ctx context.Context) ([]staff.StaffEntry, error) {
	return r.list(ctx, `WHERE status = 'PENDING'`)
}

func (r *staffRepositoryImpl) ListDirectory(ctx context.Context) ([]staff.StaffEntry, error) {
	return r.list(ctx, `WHERE status IN ('APPROVED', 'OUT', 'COMPLETED')`)
}

func (r *staffRepositoryImpl) ListActive(ctx context.Context) ([]staff.StaffEntry, error) {
	return r.list(ctx, `WHERE status IN ('APPROVED', 'OUT')`)
}

func (r *staffRepositoryImpl) ListByDate(ctx context.Context, day time.Time) ([]staff.StaffEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + staffColumns + `
		FROM staff_entries
		WHERE date = $1
		ORDER BY submitted_at DESC
	`

	rows, err := q.Query(ctx, query, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStaffEntries(rows)
}

func (r *staffRepositoryImpl) CountByStatus(ctx context.Context, status staff.Status) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM staff_entries WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *staffRepositoryImpl) MarkOverdueAlerted(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE staff_entries
		SET overdue_alert_sent = TRUE, updated_at = NOW()
		WHERE id = $1
	`, id)
	return err
}

func (r *staffRepositoryImpl) list(ctx context.Context, where string) ([]staff.StaffEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + staffColumns + `
		FROM staff_entries ` + where + `
		ORDER BY submitted_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStaffEntries(rows)
}

func scanStaffEntry(row pgx.Row) (staff.StaffEntry, error) {
	var e staff.StaffEntry
	err := row.Scan(
		&e.ID,
		&e.Date,
		&e.Name,
		&e.EmployeeCode,
		&e.Department,
		&e.Purpose,
		&e.Reason,
		&e.AllowedDuration,
		&e.NotifySMS,
		&e.NotifyEmail,
		&e.Status,
		&e.ApprovedAt,
		&e.OutTime,
		&e.InTime,
		&e.SubmittedAt,
		&e.OverdueAlertSent,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

func scanStaffEntries(rows pgx.Rows) ([]staff.StaffEntry, error) {
	var entries []staff.StaffEntry
	for rows.Next() {
		entry, err := scanStaffEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
