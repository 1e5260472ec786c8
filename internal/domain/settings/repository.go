package settings

import "context"

// SettingsRepository - interface for the settings table. Get returns
// Defaults() when nothing has been stored; Save overwrites the whole record.
type SettingsRepository interface {
	Get(ctx context.Context) (Settings, error)
	Save(ctx context.Context, s Settings) error
}
