package postgresql

import (
	"context"
	"errors"

	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/settings"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

// The settings table holds a single row. An absent row means nothing has been
// configured yet, so Get falls back to the defaults instead of failing.
func (r *settingsRepositoryImpl) Get(ctx context.Context) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	var s settings.Settings
	err := q.QueryRow(ctx, `
		SELECT departments, notifications_enabled, theme
		FROM settings
		WHERE id = 1
	`).Scan(&s.Departments, &s.NotificationsEnabled, &s.Theme)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.Defaults(), nil
		}
		return settings.Settings{}, err
	}

	if len(s.Departments) == 0 {
		s.Departments = settings.Defaults().Departments
	}

	return s, nil
}

func (r *settingsRepositoryImpl) Save(ctx context.Context, s settings.Settings) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO settings (id, departments, notifications_enabled, theme, updated_at)
		VALUES (1, $1, $2, $3, NOW())
		ON CONFLICT (id) DO UPDATE
		SET departments = EXCLUDED.departments,
			notifications_enabled = EXCLUDED.notifications_enabled,
			theme = EXCLUDED.theme,
			updated_at = NOW()
	`, s.Departments, s.NotificationsEnabled, s.Theme)
	return err
}
