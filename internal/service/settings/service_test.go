package settings

import (
	"context"
	"testing"

	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsRepo struct {
	stored *settings.Settings
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (settings.Settings, error) {
	if f.stored == nil {
		return settings.Defaults(), nil
	}
	return *f.stored, nil
}

func (f *fakeSettingsRepo) Save(ctx context.Context, s settings.Settings) error {
	f.stored = &s
	return nil
}

func TestGet_ReturnsDefaultsWhenUnset(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(&fakeSettingsRepo{})

	cfg, err := svc.Get(ctx)
	require.NoError(t, err)

	assert.Equal(t, settings.Defaults(), cfg)
	assert.True(t, cfg.NotificationsEnabled)
	assert.Equal(t, settings.ThemeLight, cfg.Theme)
}

func TestAddDepartment(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(&fakeSettingsRepo{})

	cfg, err := svc.AddDepartment(ctx, "Warehouse")
	require.NoError(t, err)

	assert.Contains(t, cfg.Departments, "Warehouse")
	// new entries go to the end, existing order is preserved
	assert.Equal(t, "Warehouse", cfg.Departments[len(cfg.Departments)-1])
}

func TestAddDepartment_Duplicate(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(&fakeSettingsRepo{})

	_, err := svc.AddDepartment(ctx, "HR")

	assert.ErrorIs(t, err, settings.ErrDepartmentExists)
}

func TestRemoveDepartment(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(&fakeSettingsRepo{})

	cfg, err := svc.RemoveDepartment(ctx, "Quality")
	require.NoError(t, err)

	assert.NotContains(t, cfg.Departments, "Quality")
	assert.Len(t, cfg.Departments, len(settings.Defaults().Departments)-1)
}

func TestRemoveDepartment_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(&fakeSettingsRepo{})

	_, err := svc.RemoveDepartment(ctx, "Warehouse")

	assert.ErrorIs(t, err, settings.ErrDepartmentNotFound)
}

func TestRemoveDepartment_LastOneStays(t *testing.T) {
	ctx := context.Background()
	repo := &fakeSettingsRepo{stored: &settings.Settings{
		Departments:          []string{"Production"},
		NotificationsEnabled: true,
		Theme:                settings.ThemeLight,
	}}
	svc := NewSettingsService(repo)

	_, err := svc.RemoveDepartment(ctx, "Production")

	assert.ErrorIs(t, err, settings.ErrLastDepartment)
}

func TestToggleNotifications(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(&fakeSettingsRepo{})

	cfg, err := svc.ToggleNotifications(ctx)
	require.NoError(t, err)
	assert.False(t, cfg.NotificationsEnabled)

	cfg, err = svc.ToggleNotifications(ctx)
	require.NoError(t, err)
	assert.True(t, cfg.NotificationsEnabled)
}

func TestSetTheme(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(&fakeSettingsRepo{})

	cfg, err := svc.SetTheme(ctx, settings.ThemeDark)
	require.NoError(t, err)
	assert.Equal(t, settings.ThemeDark, cfg.Theme)

	_, err = svc.SetTheme(ctx, "blue")
	assert.ErrorIs(t, err, settings.ErrInvalidTheme)
}
