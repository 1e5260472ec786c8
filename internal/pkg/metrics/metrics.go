package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Gate traffic counters, exposed on /metrics.
var (
	StaffSubmissions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gatemaster_staff_submissions_total",
		Help: "Number of staff gate pass requests submitted.",
	})

	StaffDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gatemaster_staff_decisions_total",
		Help: "Number of HR decisions applied, by decision.",
	}, []string{"decision"})

	StaffMovements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gatemaster_staff_movements_total",
		Help: "Number of staff gate movements recorded, by direction.",
	}, []string{"direction"})

	VisitorRegistrations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gatemaster_visitor_registrations_total",
		Help: "Number of visitor IN entries recorded.",
	})

	OverdueAlerts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gatemaster_overdue_alerts_total",
		Help: "Number of overdue gate pass alerts raised by the sweep job.",
	})
)
