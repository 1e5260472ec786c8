package staff

import (
	"time"

	"github.com/hostwebit342-png/gatemaster-backend-go/internal/pkg/validator"
)

type CreateStaffEntryRequest struct {
	Name            string `json:"name"`
	EmployeeCode    string `json:"employee_code"`
	Department      string `json:"department"`
	Purpose         string `json:"purpose"`
	Reason          string `json:"reason"`
	AllowedDuration int    `json:"allowed_duration_minutes"`
	NotifySMS       bool   `json:"notify_sms"`
	NotifyEmail     bool   `json:"notify_email"`
}

func (r *CreateStaffEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if !IsValidPurpose(Purpose(r.Purpose)) {
		errs = append(errs, validator.ValidationError{
			Field:   "purpose",
			Message: "purpose must be one of Office Work, Home, Half Day",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if r.AllowedDuration <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "allowed_duration_minutes",
			Message: "allowed_duration_minutes must be a positive integer",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecisionRequest struct {
	EntryID  string `json:"entry_id"`
	Decision string `json:"decision"`
}

func (r *DecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EntryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "entry_id",
			Message: "entry_id is required",
		})
	}

	if d := Status(r.Decision); d != StatusApproved && d != StatusRejected {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision must be APPROVED or REJECTED",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// StaffEntryResponse is the wire form of an entry; wall-clock fields are
// formatted for the gate terminal display.
type StaffEntryResponse struct {
	ID              string  `json:"id"`
	Date            string  `json:"date"`
	Name            string  `json:"name"`
	EmployeeCode    string  `json:"employee_code"`
	Department      string  `json:"department"`
	Purpose         string  `json:"purpose"`
	Reason          string  `json:"reason"`
	AllowedDuration int     `json:"allowed_duration_minutes"`
	NotifySMS       bool    `json:"notify_sms"`
	NotifyEmail     bool    `json:"notify_email"`
	Status          string  `json:"status"`
	ApprovedAt      *string `json:"approved_at,omitempty"`
	OutTime         *string `json:"out_time,omitempty"`
	InTime          *string `json:"in_time,omitempty"`
	SubmittedAt     string  `json:"submitted_at"`

	Timer TimerResponse `json:"timer"`
}

type TimerResponse struct {
	Phase          string `json:"phase"`
	ElapsedMinutes int    `json:"elapsed_minutes"`
	OverdueMinutes int    `json:"overdue_minutes,omitempty"`
}

// SummaryCounts backs the gate management badges.
type SummaryCounts struct {
	Approved int64 `json:"approved"`
	Out      int64 `json:"out"`
}

const wallClockLayout = "15:04:05"

func ToResponse(entry StaffEntry, now time.Time) StaffEntryResponse {
	timer := ComputeTimer(entry, now)

	resp := StaffEntryResponse{
		ID:              entry.ID,
		Date:            entry.Date.Format("2006-01-02"),
		Name:            entry.Name,
		EmployeeCode:    entry.EmployeeCode,
		Department:      entry.Department,
		Purpose:         string(entry.Purpose),
		Reason:          entry.Reason,
		AllowedDuration: entry.AllowedDuration,
		NotifySMS:       entry.NotifySMS,
		NotifyEmail:     entry.NotifyEmail,
		Status:          string(entry.Status),
		SubmittedAt:     entry.SubmittedAt.Format(wallClockLayout),
		Timer: TimerResponse{
			Phase:          string(timer.Phase),
			ElapsedMinutes: timer.ElapsedMinutes,
			OverdueMinutes: timer.OverdueMinutes,
		},
	}

	if entry.ApprovedAt != nil {
		s := entry.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &s
	}
	if entry.OutTime != nil {
		s := entry.OutTime.Format(wallClockLayout)
		resp.OutTime = &s
	}
	if entry.InTime != nil {
		s := entry.InTime.Format(wallClockLayout)
		resp.InTime = &s
	}

	return resp
}

func ToResponseList(entries []StaffEntry, now time.Time) []StaffEntryResponse {
	responses := make([]StaffEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, ToResponse(entry, now))
	}
	return responses
}
