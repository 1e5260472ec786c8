package dashboard

// Summary backs the dashboard cards: today's gate traffic at a glance.
type Summary struct {
	VisitorsToday  int64 `json:"visitors_today"`
	VisitorsInside int64 `json:"visitors_inside"`
	StaffPending   int64 `json:"staff_pending"`
	StaffApproved  int64 `json:"staff_approved"`
	StaffOut       int64 `json:"staff_out"`
	StaffCompleted int64 `json:"staff_completed"`
}

type InsightResponse struct {
	Text string `json:"text"`
}
