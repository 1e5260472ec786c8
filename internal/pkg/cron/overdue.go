package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/settings"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/staff"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/pkg/email"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/pkg/metrics"
)

// OverdueJobs watches active gate passes and raises an alert when one runs
// past its allowance. The timer itself stays a pure per-read computation;
// the job only adds the alerting.
type OverdueJobs struct {
	staffRepo    staff.StaffRepository
	settingsRepo settings.SettingsRepository
	emailService email.EmailService
}

func NewOverdueJobs(staffRepo staff.StaffRepository, settingsRepo settings.SettingsRepository, emailService email.EmailService) *OverdueJobs {
	return &OverdueJobs{
		staffRepo:    staffRepo,
		settingsRepo: settingsRepo,
		emailService: emailService,
	}
}

func (j *OverdueJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("sweep_overdue_gate_passes", 1*time.Minute, j.SweepOverdue)
}

// SweepOverdue flags entries whose elapsed time exceeds their allowance. Each
// entry is alerted at most once per cycle.
func (j *OverdueJobs) SweepOverdue(ctx context.Context) error {
	entries, err := j.staffRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active entries: %w", err)
	}
	if len(entries) == 0 {
		return nil
	}

	cfg, err := j.settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	now := time.Now()
	for _, entry := range entries {
		reading := staff.ComputeTimer(entry, now)
		if reading.Phase != staff.TimerOverdue || entry.OverdueAlertSent {
			continue
		}

		slog.Warn("Gate pass overdue",
			"entry_id", entry.ID,
			"name", entry.Name,
			"employee_code", entry.EmployeeCode,
			"elapsed_minutes", reading.ElapsedMinutes,
			"overdue_minutes", reading.OverdueMinutes,
		)
		metrics.OverdueAlerts.Inc()

		if cfg.NotificationsEnabled && entry.NotifyEmail && j.emailService != nil {
			if err := j.emailService.SendOverdueAlert(entry, reading); err != nil {
				slog.Error("Failed to send overdue alert email", "entry_id", entry.ID, "error", err)
				continue
			}
		}

		if err := j.staffRepo.MarkOverdueAlerted(ctx, entry.ID); err != nil {
			slog.Error("Failed to mark entry as alerted", "entry_id", entry.ID, "error", err)
		}
	}

	return nil
}
