package cron

import (
	"context"
	"testing"
	"time"

	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/settings"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStaffRepo struct {
	entries map[string]staff.StaffEntry
}

func (f *fakeStaffRepo) Create(ctx context.Context, entry staff.StaffEntry) (staff.StaffEntry, error) {
	f.entries[entry.ID] = entry
	return entry, nil
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, id string) (staff.StaffEntry, error) {
	entry, ok := f.entries[id]
	if !ok {
		return staff.StaffEntry{}, staff.ErrStaffEntryNotFound
	}
	return entry, nil
}

func (f *fakeStaffRepo) ApplyDecision(ctx context.Context, id string, decision staff.Status, decidedAt time.Time) (bool, error) {
	return false, nil
}

func (f *fakeStaffRepo) RecordExit(ctx context.Context, id string, at time.Time) (bool, error) {
	return false, nil
}

func (f *fakeStaffRepo) RecordReturn(ctx context.Context, id string, at time.Time) (bool, error) {
	return false, nil
}

func (f *fakeStaffRepo) ListPending(ctx context.Context) ([]staff.StaffEntry, error) {
	return nil, nil
}

func (f *fakeStaffRepo) ListDirectory(ctx context.Context) ([]staff.StaffEntry, error) {
	return nil, nil
}

func (f *fakeStaffRepo) ListActive(ctx context.Context) ([]staff.StaffEntry, error) {
	var out []staff.StaffEntry
	for _, entry := range f.entries {
		if entry.Status.IsActive() {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (f *fakeStaffRepo) ListByDate(ctx context.Context, day time.Time) ([]staff.StaffEntry, error) {
	return nil, nil
}

func (f *fakeStaffRepo) CountByStatus(ctx context.Context, status staff.Status) (int64, error) {
	return 0, nil
}

func (f *fakeStaffRepo) MarkOverdueAlerted(ctx context.Context, id string) error {
	entry := f.entries[id]
	entry.OverdueAlertSent = true
	f.entries[id] = entry
	return nil
}

type fakeSettingsRepo struct {
	cfg settings.Settings
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (settings.Settings, error) {
	return f.cfg, nil
}

func (f *fakeSettingsRepo) Save(ctx context.Context, s settings.Settings) error {
	f.cfg = s
	return nil
}

type fakeEmailService struct {
	sent []string
}

func (f *fakeEmailService) SendOverdueAlert(entry staff.StaffEntry, reading staff.TimerReading) error {
	f.sent = append(f.sent, entry.ID)
	return nil
}

func overdueEntry(id string, minutesAgo, allowed int) staff.StaffEntry {
	approvedAt := time.Now().Add(-time.Duration(minutesAgo) * time.Minute)
	return staff.StaffEntry{
		ID:              id,
		Name:            "Ravi Kumar",
		EmployeeCode:    "EMP-142",
		Status:          staff.StatusOut,
		ApprovedAt:      &approvedAt,
		AllowedDuration: allowed,
		NotifyEmail:     true,
	}
}

func TestSweepOverdue_AlertsOnce(t *testing.T) {
	ctx := context.Background()
	staffRepo := &fakeStaffRepo{entries: map[string]staff.StaffEntry{
		"overdue": overdueEntry("overdue", 90, 60),
	}}
	emailSvc := &fakeEmailService{}
	jobs := NewOverdueJobs(staffRepo, &fakeSettingsRepo{cfg: settings.Defaults()}, emailSvc)

	require.NoError(t, jobs.SweepOverdue(ctx))
	assert.Equal(t, []string{"overdue"}, emailSvc.sent)
	assert.True(t, staffRepo.entries["overdue"].OverdueAlertSent)

	// second sweep must not alert again
	require.NoError(t, jobs.SweepOverdue(ctx))
	assert.Len(t, emailSvc.sent, 1)
}

func TestSweepOverdue_SkipsWithinAllowance(t *testing.T) {
	ctx := context.Background()
	staffRepo := &fakeStaffRepo{entries: map[string]staff.StaffEntry{
		"active": overdueEntry("active", 30, 60),
	}}
	emailSvc := &fakeEmailService{}
	jobs := NewOverdueJobs(staffRepo, &fakeSettingsRepo{cfg: settings.Defaults()}, emailSvc)

	require.NoError(t, jobs.SweepOverdue(ctx))

	assert.Empty(t, emailSvc.sent)
	assert.False(t, staffRepo.entries["active"].OverdueAlertSent)
}

func TestSweepOverdue_HonorsNotificationToggle(t *testing.T) {
	ctx := context.Background()
	staffRepo := &fakeStaffRepo{entries: map[string]staff.StaffEntry{
		"overdue": overdueEntry("overdue", 120, 60),
	}}
	emailSvc := &fakeEmailService{}
	cfg := settings.Defaults()
	cfg.NotificationsEnabled = false
	jobs := NewOverdueJobs(staffRepo, &fakeSettingsRepo{cfg: cfg}, emailSvc)

	require.NoError(t, jobs.SweepOverdue(ctx))

	// no mail, but the entry is still flagged so logs stay quiet
	assert.Empty(t, emailSvc.sent)
	assert.True(t, staffRepo.entries["overdue"].OverdueAlertSent)
}

func TestSweepOverdue_NilEmailService(t *testing.T) {
	ctx := context.Background()
	staffRepo := &fakeStaffRepo{entries: map[string]staff.StaffEntry{
		"overdue": overdueEntry("overdue", 90, 60),
	}}
	jobs := NewOverdueJobs(staffRepo, &fakeSettingsRepo{cfg: settings.Defaults()}, nil)

	require.NoError(t, jobs.SweepOverdue(ctx))

	assert.True(t, staffRepo.entries["overdue"].OverdueAlertSent)
}
