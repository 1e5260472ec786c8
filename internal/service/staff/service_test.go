package staff

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/gatelog"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/settings"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/staff"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStaffRepo struct {
	entries map[string]staff.StaffEntry
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{entries: make(map[string]staff.StaffEntry)}
}

func (f *fakeStaffRepo) Create(ctx context.Context, entry staff.StaffEntry) (staff.StaffEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt
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
	entry, ok := f.entries[id]
	if !ok {
		return false, staff.ErrStaffEntryNotFound
	}
	if entry.Status != staff.StatusPending {
		return false, nil
	}
	entry.Status = decision
	if decision == staff.StatusApproved {
		entry.ApprovedAt = &decidedAt
	}
	f.entries[id] = entry
	return true, nil
}

func (f *fakeStaffRepo) RecordExit(ctx context.Context, id string, at time.Time) (bool, error) {
	entry, ok := f.entries[id]
	if !ok {
		return false, staff.ErrStaffEntryNotFound
	}
	if entry.Status != staff.StatusApproved {
		return false, nil
	}
	entry.Status = staff.StatusOut
	entry.OutTime = &at
	f.entries[id] = entry
	return true, nil
}

func (f *fakeStaffRepo) RecordReturn(ctx context.Context, id string, at time.Time) (bool, error) {
	entry, ok := f.entries[id]
	if !ok {
		return false, staff.ErrStaffEntryNotFound
	}
	if entry.Status != staff.StatusOut {
		return false, nil
	}
	entry.Status = staff.StatusCompleted
	entry.InTime = &at
	f.entries[id] = entry
	return true, nil
}

func (f *fakeStaffRepo) ListPending(ctx context.Context) ([]staff.StaffEntry, error) {
	return f.listByStatus(staff.StatusPending), nil
}

func (f *fakeStaffRepo) ListDirectory(ctx context.Context) ([]staff.StaffEntry, error) {
	out := f.listByStatus(staff.StatusApproved)
	out = append(out, f.listByStatus(staff.StatusOut)...)
	out = append(out, f.listByStatus(staff.StatusCompleted)...)
	return out, nil
}

func (f *fakeStaffRepo) ListActive(ctx context.Context) ([]staff.StaffEntry, error) {
	out := f.listByStatus(staff.StatusApproved)
	out = append(out, f.listByStatus(staff.StatusOut)...)
	return out, nil
}

func (f *fakeStaffRepo) ListByDate(ctx context.Context, day time.Time) ([]staff.StaffEntry, error) {
	var out []staff.StaffEntry
	for _, entry := range f.entries {
		if entry.Date.Equal(day.Truncate(24 * time.Hour)) {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (f *fakeStaffRepo) CountByStatus(ctx context.Context, status staff.Status) (int64, error) {
	return int64(len(f.listByStatus(status))), nil
}

func (f *fakeStaffRepo) MarkOverdueAlerted(ctx context.Context, id string) error {
	entry, ok := f.entries[id]
	if !ok {
		return staff.ErrStaffEntryNotFound
	}
	entry.OverdueAlertSent = true
	f.entries[id] = entry
	return nil
}

func (f *fakeStaffRepo) listByStatus(status staff.Status) []staff.StaffEntry {
	var out []staff.StaffEntry
	for _, entry := range f.entries {
		if entry.Status == status {
			out = append(out, entry)
		}
	}
	return out
}

type fakeLogRepo struct {
	logs []gatelog.GateLog
}

func (f *fakeLogRepo) Append(ctx context.Context, log gatelog.GateLog) (gatelog.GateLog, error) {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	log.Timestamp = time.Now()
	f.logs = append(f.logs, log)
	if len(f.logs) > gatelog.RetentionLimit {
		f.logs = f.logs[len(f.logs)-gatelog.RetentionLimit:]
	}
	return log, nil
}

func (f *fakeLogRepo) List(ctx context.Context) ([]gatelog.GateLog, error) {
	return f.logs, nil
}

func (f *fakeLogRepo) Search(ctx context.Context, query string, typeFilter *gatelog.RecordType) ([]gatelog.GateLog, error) {
	return f.logs, nil
}

func (f *fakeLogRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.logs)), nil
}

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

func newTestService() (*StaffService, *fakeStaffRepo, *fakeLogRepo) {
	staffRepo := newFakeStaffRepo()
	logRepo := &fakeLogRepo{}
	svc := NewStaffService(staffRepo, logRepo, &fakeSettingsRepo{})
	return svc, staffRepo, logRepo
}

func validSubmitRequest() staff.CreateStaffEntryRequest {
	return staff.CreateStaffEntryRequest{
		Name:            "Ravi Kumar",
		EmployeeCode:    "EMP-142",
		Department:      "Production",
		Purpose:         string(staff.PurposeOfficeWork),
		Reason:          "Vendor visit",
		AllowedDuration: 60,
		NotifyEmail:     true,
	}
}

func TestSubmit_StartsPending(t *testing.T) {
	ctx := context.Background()
	svc, _, logRepo := newTestService()

	entry, err := svc.Submit(ctx, validSubmitRequest())
	require.NoError(t, err)

	assert.Equal(t, staff.StatusPending, entry.Status)
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.SubmittedAt.IsZero())
	assert.Nil(t, entry.ApprovedAt)
	assert.Nil(t, entry.OutTime)
	assert.Nil(t, entry.InTime)

	// submission is audit-logged
	require.Len(t, logRepo.logs, 1)
	assert.Equal(t, gatelog.ActionRegistered, logRepo.logs[0].Action)
	assert.Equal(t, gatelog.TypeStaff, logRepo.logs[0].Type)
}

func TestSubmit_RejectsUnknownDepartment(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	req := validSubmitRequest()
	req.Department = "Warehouse"

	_, err := svc.Submit(ctx, req)
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestSubmit_RejectsInvalidRequest(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	req := validSubmitRequest()
	req.Name = ""
	req.AllowedDuration = 0

	_, err := svc.Submit(ctx, req)
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}

func TestDecide_ApprovePendingEntry(t *testing.T) {
	ctx := context.Background()
	svc, _, logRepo := newTestService()

	entry, err := svc.Submit(ctx, validSubmitRequest())
	require.NoError(t, err)

	decided, err := svc.Decide(ctx, staff.DecisionRequest{
		EntryID:  entry.ID,
		Decision: string(staff.StatusApproved),
	})
	require.NoError(t, err)

	assert.Equal(t, staff.StatusApproved, decided.Status)
	require.NotNil(t, decided.ApprovedAt)

	require.Len(t, logRepo.logs, 2)
	assert.Equal(t, gatelog.ActionApproved, logRepo.logs[1].Action)
}

func TestDecide_RejectLeavesApprovalUnset(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	entry, err := svc.Submit(ctx, validSubmitRequest())
	require.NoError(t, err)

	decided, err := svc.Decide(ctx, staff.DecisionRequest{
		EntryID:  entry.ID,
		Decision: string(staff.StatusRejected),
	})
	require.NoError(t, err)

	assert.Equal(t, staff.StatusRejected, decided.Status)
	assert.Nil(t, decided.ApprovedAt)
}

func TestDecide_SecondDecisionIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, _, logRepo := newTestService()

	entry, err := svc.Submit(ctx, validSubmitRequest())
	require.NoError(t, err)

	_, err = svc.Decide(ctx, staff.DecisionRequest{
		EntryID:  entry.ID,
		Decision: string(staff.StatusApproved),
	})
	require.NoError(t, err)
	logCount := len(logRepo.logs)

	// a conflicting retry must not flip the status or log again
	decided, err := svc.Decide(ctx, staff.DecisionRequest{
		EntryID:  entry.ID,
		Decision: string(staff.StatusRejected),
	})
	require.NoError(t, err)

	assert.Equal(t, staff.StatusApproved, decided.Status)
	assert.Len(t, logRepo.logs, logCount)
}

func TestDecide_InvalidDecisionValue(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	_, err := svc.Decide(ctx, staff.DecisionRequest{
		EntryID:  uuid.NewString(),
		Decision: "MAYBE",
	})
	require.Error(t, err)
}

func TestRecordExit_RequiresApproval(t *testing.T) {
	ctx := context.Background()
	svc, _, logRepo := newTestService()

	entry, err := svc.Submit(ctx, validSubmitRequest())
	require.NoError(t, err)
	logCount := len(logRepo.logs)

	// still PENDING, exit must be ignored
	got, err := svc.RecordExit(ctx, entry.ID)
	require.NoError(t, err)

	assert.Equal(t, staff.StatusPending, got.Status)
	assert.Nil(t, got.OutTime)
	assert.Len(t, logRepo.logs, logCount)
}

func TestFullCycle(t *testing.T) {
	ctx := context.Background()
	svc, _, logRepo := newTestService()

	entry, err := svc.Submit(ctx, validSubmitRequest())
	require.NoError(t, err)

	_, err = svc.Decide(ctx, staff.DecisionRequest{
		EntryID:  entry.ID,
		Decision: string(staff.StatusApproved),
	})
	require.NoError(t, err)

	out, err := svc.RecordExit(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, staff.StatusOut, out.Status)
	require.NotNil(t, out.OutTime)

	done, err := svc.RecordReturn(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, staff.StatusCompleted, done.Status)
	require.NotNil(t, done.InTime)

	// Registered, APPROVED, Security OUT, Security COMPLETED
	require.Len(t, logRepo.logs, 4)
	assert.Equal(t, gatelog.ActionSecurityOut, logRepo.logs[2].Action)
	assert.Equal(t, gatelog.ActionSecurityCompleted, logRepo.logs[3].Action)
}

func TestRecordReturn_TwiceIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	entry, err := svc.Submit(ctx, validSubmitRequest())
	require.NoError(t, err)

	_, err = svc.Decide(ctx, staff.DecisionRequest{
		EntryID:  entry.ID,
		Decision: string(staff.StatusApproved),
	})
	require.NoError(t, err)
	_, err = svc.RecordExit(ctx, entry.ID)
	require.NoError(t, err)

	first, err := svc.RecordReturn(ctx, entry.ID)
	require.NoError(t, err)

	second, err := svc.RecordReturn(ctx, entry.ID)
	require.NoError(t, err)

	assert.Equal(t, staff.StatusCompleted, second.Status)
	assert.Equal(t, first.InTime, second.InTime)
}

func TestCounts(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	for i := 0; i < 3; i++ {
		entry, err := svc.Submit(ctx, validSubmitRequest())
		require.NoError(t, err)
		_, err = svc.Decide(ctx, staff.DecisionRequest{
			EntryID:  entry.ID,
			Decision: string(staff.StatusApproved),
		})
		require.NoError(t, err)
		if i == 0 {
			_, err = svc.RecordExit(ctx, entry.ID)
			require.NoError(t, err)
		}
	}

	counts, err := svc.Counts(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), counts.Approved)
	assert.Equal(t, int64(1), counts.Out)
}
