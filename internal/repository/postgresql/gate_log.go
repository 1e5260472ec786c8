package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/gatelog"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type gateLogRepositoryImpl struct {
	db *database.DB
}

func NewGateLogRepository(db *database.DB) gatelog.GateLogRepository {
	return &gateLogRepositoryImpl{db: db}
}

// Append inserts the entry and trims the table back to the retention limit in
// one transaction, so the store never holds more than RetentionLimit rows.
func (r *gateLogRepositoryImpl) Append(ctx context.Context, log gatelog.GateLog) (gatelog.GateLog, error) {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		insert := `
			INSERT INTO gate_logs (id, name, employee_code, type, action, details, timestamp)
			VALUES ($1, $2, $3, $4, $5, $6, NOW())
			RETURNING timestamp
		`
		if err := q.QueryRow(txCtx, insert,
			log.ID, log.Name, log.EmployeeCode, log.Type, log.Action, log.Details,
		).Scan(&log.Timestamp); err != nil {
			return fmt.Errorf("insert gate log: %w", err)
		}

		evict := `
			DELETE FROM gate_logs
			WHERE id NOT IN (
				SELECT id FROM gate_logs
				ORDER BY timestamp DESC, id DESC
				LIMIT $1
			)
		`
		if _, err := q.Exec(txCtx, evict, gatelog.RetentionLimit); err != nil {
			return fmt.Errorf("evict old gate logs: %w", err)
		}

		return nil
	})
	if err != nil {
		return gatelog.GateLog{}, err
	}

	return log, nil
}

func (r *gateLogRepositoryImpl) List(ctx context.Context) ([]gatelog.GateLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, employee_code, type, action, details, timestamp
		FROM gate_logs
		ORDER BY timestamp DESC, id DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanGateLogs(rows)
}

func (r *gateLogRepositoryImpl) Search(ctx context.Context, query string, typeFilter *gatelog.RecordType) ([]gatelog.GateLog, error) {
	q := GetQuerier(ctx, r.db)

	sql := `
		SELECT id, name, employee_code, type, action, details, timestamp
		FROM gate_logs
		WHERE (name ILIKE $1 OR employee_code ILIKE $1 OR details ILIKE $1)
	`
	args := []interface{}{"%" + query + "%"}

	if typeFilter != nil {
		sql += ` AND type = $2`
		args = append(args, *typeFilter)
	}
	sql += ` ORDER BY timestamp DESC, id DESC`

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanGateLogs(rows)
}

func (r *gateLogRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM gate_logs`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanGateLogs(rows pgx.Rows) ([]gatelog.GateLog, error) {
	var logs []gatelog.GateLog
	for rows.Next() {
		var l gatelog.GateLog
		if err := rows.Scan(&l.ID, &l.Name, &l.EmployeeCode, &l.Type, &l.Action, &l.Details, &l.Timestamp); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
