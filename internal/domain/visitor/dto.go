package visitor

import (
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/pkg/validator"
)

type RegisterVisitorRequest struct {
	Name        string  `json:"name"`
	Mobile      string  `json:"mobile"`
	MeetingWith string  `json:"meeting_with"`
	Department  string  `json:"department"`
	Purpose     string  `json:"purpose"`
	Photo       *string `json:"photo,omitempty"`
}

func (r *RegisterVisitorRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidMobile(r.Mobile) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile",
			Message: "mobile must be exactly 10 digits",
		})
	}

	if validator.IsEmpty(r.MeetingWith) {
		errs = append(errs, validator.ValidationError{
			Field:   "meeting_with",
			Message: "meeting_with is required",
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
			Message: "purpose must be one of Meeting, Material Delivery, Just Visit",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type VisitorResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Name        string  `json:"name"`
	Mobile      string  `json:"mobile"`
	MeetingWith string  `json:"meeting_with"`
	Department  string  `json:"department"`
	Purpose     string  `json:"purpose"`
	InTime      string  `json:"in_time"`
	OutTime     *string `json:"out_time,omitempty"`
	OTP         string  `json:"otp"`
	Photo       *string `json:"photo,omitempty"`
	Status      string  `json:"status"`
}

const wallClockLayout = "15:04:05"

func ToResponse(v Visitor) VisitorResponse {
	resp := VisitorResponse{
		ID:          v.ID,
		Date:        v.Date.Format("2006-01-02"),
		Name:        v.Name,
		Mobile:      v.Mobile,
		MeetingWith: v.MeetingWith,
		Department:  v.Department,
		Purpose:     string(v.Purpose),
		InTime:      v.InTime.Format(wallClockLayout),
		OTP:         v.OTP,
		Photo:       v.Photo,
		Status:      string(v.Status),
	}
	if v.OutTime != nil {
		s := v.OutTime.Format(wallClockLayout)
		resp.OutTime = &s
	}
	return resp
}

func ToResponseList(visitors []Visitor) []VisitorResponse {
	responses := make([]VisitorResponse, 0, len(visitors))
	for _, v := range visitors {
		responses = append(responses, ToResponse(v))
	}
	return responses
}
