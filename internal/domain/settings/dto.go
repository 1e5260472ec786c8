package settings

import (
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/pkg/validator"
)

type SettingsResponse struct {
	Departments          []string `json:"departments"`
	NotificationsEnabled bool     `json:"notifications_enabled"`
	Theme                string   `json:"theme"`
}

func ToResponse(s Settings) SettingsResponse {
	return SettingsResponse{
		Departments:          s.Departments,
		NotificationsEnabled: s.NotificationsEnabled,
		Theme:                string(s.Theme),
	}
}

type AddDepartmentRequest struct {
	Name string `json:"name"`
}

func (r *AddDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetThemeRequest struct {
	Theme string `json:"theme"`
}

func (r *SetThemeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidTheme(Theme(r.Theme)) {
		errs = append(errs, validator.ValidationError{
			Field:   "theme",
			Message: "theme must be light or dark",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
