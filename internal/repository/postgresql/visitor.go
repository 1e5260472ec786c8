package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/visitor"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type visitorRepositoryImpl struct {
	db *database.DB
}

func NewVisitorRepository(db *database.DB) visitor.VisitorRepository {
	return &visitorRepositoryImpl{db: db}
}

const visitorColumns = `
	id, date, name, mobile, meeting_with, department, purpose,
	in_time, out_time, otp, photo, status, created_at, updated_at
`

func (r *visitorRepositoryImpl) Create(ctx context.Context, v visitor.Visitor) (visitor.Visitor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO visitors (
			id, date, name, mobile, meeting_with, department, purpose,
			in_time, otp, photo, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	if v.ID == "" {
		v.ID = uuid.NewString()
	}

	err := q.QueryRow(ctx, query,
		v.ID, v.Date, v.Name, v.Mobile, v.MeetingWith, v.Department, v.Purpose,
		v.InTime, v.OTP, v.Photo, v.Status,
	).Scan(&v.CreatedAt, &v.UpdatedAt)

	if err != nil {
		return visitor.Visitor{}, err
	}

	return v, nil
}

func (r *visitorRepositoryImpl) GetByID(ctx context.Context, id string) (visitor.Visitor, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + visitorColumns + ` FROM visitors WHERE id = $1`

	v, err := scanVisitor(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return visitor.Visitor{}, visitor.ErrVisitorNotFound
		}
		return visitor.Visitor{}, err
	}
	return v, nil
}

func (r *visitorRepositoryImpl) ExistsInside(ctx context.Context, mobile string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM visitors WHERE mobile = $1 AND status = 'IN')
	`, mobile).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *visitorRepositoryImpl) MarkOut(ctx context.Context, id string, at time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE visitors
		SET status = 'OUT', out_time = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'IN'
	`

	tag, err := q.Exec(ctx, query, id, at)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *visitorRepositoryImpl) List(ctx context.Context) ([]visitor.Visitor, error) {
	return r.list(ctx, ``)
}

func (r *visitorRepositoryImpl) ListInside(ctx context.Context) ([]visitor.Visitor, error) {
	return r.list(ctx, `WHERE status = 'IN'`)
}

func (r *visitorRepositoryImpl) ListByDate(ctx context.Context, day time.Time) ([]visitor.Visitor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + visitorColumns + `
		FROM visitors
		WHERE date = $1
		ORDER BY in_time DESC
	`

	rows, err := q.Query(ctx, query, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanVisitors(rows)
}

func (r *visitorRepositoryImpl) list(ctx context.Context, where string) ([]visitor.Visitor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + visitorColumns + `
		FROM visitors ` + where + `
		ORDER BY in_time DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanVisitors(rows)
}

func scanVisitor(row pgx.Row) (visitor.Visitor, error) {
	var v visitor.Visitor
	err := row.Scan(
		&v.ID,
		&v.Date,
		&v.Name,
		&v.Mobile,
		&v.MeetingWith,
		&v.Department,
		&v.Purpose,
		&v.InTime,
		&v.OutTime,
		&v.OTP,
		&v.Photo,
		&v.Status,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	return v, err
}

func scanVisitors(rows pgx.Rows) ([]visitor.Visitor, error) {
	var visitors []visitor.Visitor
	for rows.Next() {
		v, err := scanVisitor(rows)
		if err != nil {
			return nil, err
		}
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}
