package settings

import (
	"context"
	"fmt"

	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/settings"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/pkg/validator"
)

// SettingsService manages the facility configuration record.
type SettingsService struct {
	settingsRepo settings.SettingsRepository
}

func NewSettingsService(settingsRepo settings.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

func (s *SettingsService) Get(ctx context.Context) (settings.Settings, error) {
	return s.settingsRepo.Get(ctx)
}

// AddDepartment appends a new department to the ordered list. Duplicates are
// rejected.
func (s *SettingsService) AddDepartment(ctx context.Context, name string) (settings.Settings, error) {
	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}

	if validator.IsInSlice(name, cfg.Departments) {
		return settings.Settings{}, settings.ErrDepartmentExists
	}

	cfg.Departments = append(cfg.Departments, name)
	if err := s.settingsRepo.Save(ctx, cfg); err != nil {
		return settings.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return cfg, nil
}

// RemoveDepartment deletes a department, keeping at least one in place.
func (s *SettingsService) RemoveDepartment(ctx context.Context, name string) (settings.Settings, error) {
	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}

	if len(cfg.Departments) <= 1 {
		return settings.Settings{}, settings.ErrLastDepartment
	}
	if !validator.IsInSlice(name, cfg.Departments) {
		return settings.Settings{}, settings.ErrDepartmentNotFound
	}

	remaining := make([]string, 0, len(cfg.Departments)-1)
	for _, dept := range cfg.Departments {
		if dept != name {
			remaining = append(remaining, dept)
		}
	}
	cfg.Departments = remaining

	if err := s.settingsRepo.Save(ctx, cfg); err != nil {
		return settings.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return cfg, nil
}

// ToggleNotifications flips the facility-wide notification switch.
func (s *SettingsService) ToggleNotifications(ctx context.Context) (settings.Settings, error) {
	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}

	cfg.NotificationsEnabled = !cfg.NotificationsEnabled
	if err := s.settingsRepo.Save(ctx, cfg); err != nil {
		return settings.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return cfg, nil
}

// SetTheme stores the terminal display theme.
func (s *SettingsService) SetTheme(ctx context.Context, theme settings.Theme) (settings.Settings, error) {
	if !settings.IsValidTheme(theme) {
		return settings.Settings{}, settings.ErrInvalidTheme
	}

	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}

	cfg.Theme = theme
	if err := s.settingsRepo.Save(ctx, cfg); err != nil {
		return settings.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return cfg, nil
}
