package staff

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/gatelog"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/settings"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/staff"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/pkg/metrics"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/pkg/validator"
)

// StaffService drives the gate pass lifecycle: submission, HR decision, gate
// movement and the derived timer views. Every observable mutation appends an
// audit log entry.
type StaffService struct {
	staffRepo    staff.StaffRepository
	logRepo      gatelog.GateLogRepository
	settingsRepo settings.SettingsRepository
}

func NewStaffService(staffRepo staff.StaffRepository, logRepo gatelog.GateLogRepository, settingsRepo settings.SettingsRepository) *StaffService {
	return &StaffService{
		staffRepo:    staffRepo,
		logRepo:      logRepo,
		settingsRepo: settingsRepo,
	}
}

// Submit registers a new gate pass request. The entry starts PENDING with the
// approval, out and in fields absent.
func (s *StaffService) Submit(ctx context.Context, req staff.CreateStaffEntryRequest) (staff.StaffEntry, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffEntry{}, err
	}

	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return staff.StaffEntry{}, fmt.Errorf("failed to load settings: %w", err)
	}
	if !validator.IsInSlice(req.Department, cfg.Departments) {
		return staff.StaffEntry{}, validator.ValidationErrors{{
			Field:   "department",
			Message: "department is not configured",
		}}
	}

	now := time.Now()
	entry := staff.StaffEntry{
		Date:            now.Truncate(24 * time.Hour),
		Name:            req.Name,
		EmployeeCode:    req.EmployeeCode,
		Department:      req.Department,
		Purpose:         staff.Purpose(req.Purpose),
		Reason:          req.Reason,
		AllowedDuration: req.AllowedDuration,
		NotifySMS:       req.NotifySMS,
		NotifyEmail:     req.NotifyEmail,
		Status:          staff.StatusPending,
		SubmittedAt:     now,
	}

	created, err := s.staffRepo.Create(ctx, entry)
	if err != nil {
		return staff.StaffEntry{}, fmt.Errorf("failed to create staff entry: %w", err)
	}

	s.appendLog(ctx, created, gatelog.ActionRegistered,
		fmt.Sprintf("Purpose: %s, Duration: %dm", created.Purpose, created.AllowedDuration))
	metrics.StaffSubmissions.Inc()

	return created, nil
}

// Decide applies an HR decision to a PENDING entry. A decision on a record in
// any other status is silently ignored so retried calls stay idempotent; the
// current record is returned either way.
func (s *StaffService) Decide(ctx context.Context, req staff.DecisionRequest) (staff.StaffEntry, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffEntry{}, err
	}

	decision := staff.Status(req.Decision)
	decidedAt := time.Now()

	applied, err := s.staffRepo.ApplyDecision(ctx, req.EntryID, decision, decidedAt)
	if err != nil {
		return staff.StaffEntry{}, fmt.Errorf("failed to apply decision: %w", err)
	}

	entry, err := s.staffRepo.GetByID(ctx, req.EntryID)
	if err != nil {
		return staff.StaffEntry{}, err
	}

	if !applied {
		slog.Info("Decision ignored, entry not pending",
			"entry_id", entry.ID, "status", entry.Status, "decision", decision)
		return entry, nil
	}

	s.appendLog(ctx, entry, string(decision),
		fmt.Sprintf("HR processed request at %s", decidedAt.Format("15:04:05")))
	metrics.StaffDecisions.WithLabelValues(string(decision)).Inc()

	return entry, nil
}

// RecordExit records the security-observed exit of an APPROVED entry. Any
// other status is a no-op.
func (s *StaffService) RecordExit(ctx context.Context, entryID string) (staff.StaffEntry, error) {
	now := time.Now()

	applied, err := s.staffRepo.RecordExit(ctx, entryID, now)
	if err != nil {
		return staff.StaffEntry{}, fmt.Errorf("failed to record exit: %w", err)
	}

	entry, err := s.staffRepo.GetByID(ctx, entryID)
	if err != nil {
		return staff.StaffEntry{}, err
	}

	if !applied {
		slog.Info("Exit ignored, entry not approved", "entry_id", entry.ID, "status", entry.Status)
		return entry, nil
	}

	s.appendLog(ctx, entry, gatelog.ActionSecurityOut,
		fmt.Sprintf("Recorded at %s", now.Format("15:04:05")))
	metrics.StaffMovements.WithLabelValues("out").Inc()

	return entry, nil
}

// RecordReturn records the return of an OUT entry, finishing the cycle. Any
// other status is a no-op.
func (s *StaffService) RecordReturn(ctx context.Context, entryID string) (staff.StaffEntry, error) {
	now := time.Now()

	applied, err := s.staffRepo.RecordReturn(ctx, entryID, now)
	if err != nil {
		return staff.StaffEntry{}, fmt.Errorf("failed to record return: %w", err)
	}

	entry, err := s.staffRepo.GetByID(ctx, entryID)
	if err != nil {
		return staff.StaffEntry{}, err
	}

	if !applied {
		slog.Info("Return ignored, entry not out", "entry_id", entry.ID, "status", entry.Status)
		return entry, nil
	}

	s.appendLog(ctx, entry, gatelog.ActionSecurityCompleted,
		fmt.Sprintf("Recorded at %s", now.Format("15:04:05")))
	metrics.StaffMovements.WithLabelValues("in").Inc()

	return entry, nil
}

// PendingQueue returns the HR approval queue, newest first.
func (s *StaffService) PendingQueue(ctx context.Context) ([]staff.StaffEntry, error) {
	return s.staffRepo.ListPending(ctx)
}

// Directory returns entries visible at the gate desk: APPROVED, OUT and
// COMPLETED, never PENDING or REJECTED.
func (s *StaffService) Directory(ctx context.Context) ([]staff.StaffEntry, error) {
	return s.staffRepo.ListDirectory(ctx)
}

// Counts returns the badge numbers for the gate management header.
func (s *StaffService) Counts(ctx context.Context) (staff.SummaryCounts, error) {
	approved, err := s.staffRepo.CountByStatus(ctx, staff.StatusApproved)
	if err != nil {
		return staff.SummaryCounts{}, err
	}
	out, err := s.staffRepo.CountByStatus(ctx, staff.StatusOut)
	if err != nil {
		return staff.SummaryCounts{}, err
	}
	return staff.SummaryCounts{Approved: approved, Out: out}, nil
}

// GetByID returns a single entry.
func (s *StaffService) GetByID(ctx context.Context, id string) (staff.StaffEntry, error) {
	return s.staffRepo.GetByID(ctx, id)
}

// appendLog writes the audit trail entry. Audit failures are logged but never
// fail the surrounding operation.
func (s *StaffService) appendLog(ctx context.Context, entry staff.StaffEntry, action, details string) {
	code := entry.EmployeeCode
	_, err := s.logRepo.Append(ctx, gatelog.GateLog{
		Name:         entry.Name,
		EmployeeCode: &code,
		Type:         gatelog.TypeStaff,
		Action:       action,
		Details:      details,
	})
	if err != nil {
		slog.Error("Failed to append gate log", "action", action, "entry_id", entry.ID, "error", err)
	}
}
