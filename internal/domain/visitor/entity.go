package visitor

import "time"

type Status string

const (
	StatusIn  Status = "IN"
	StatusOut Status = "OUT"
)

type Purpose string

const (
	PurposeMeeting          Purpose = "Meeting"
	PurposeMaterialDelivery Purpose = "Material Delivery"
	PurposeJustVisit        Purpose = "Just Visit"
)

func IsValidPurpose(p Purpose) bool {
	switch p {
	case PurposeMeeting, PurposeMaterialDelivery, PurposeJustVisit:
		return true
	}
	return false
}

// Visitor is one badge cycle at the gate. OTP is shown on the printed badge
// and verified by security at exit.
type Visitor struct {
	ID          string
	Date        time.Time
	Name        string
	Mobile      string
	MeetingWith string
	Department  string
	Purpose     Purpose
	InTime      time.Time
	OutTime     *time.Time
	OTP         string
	Photo       *string // data URL captured at the gate camera
	Status      Status

	CreatedAt time.Time
	UpdatedAt time.Time
}
