package staff

import "time"

// TimerPhase classifies where an entry sits relative to its allowance.
type TimerPhase string

const (
	// TimerWaiting - HR has not approved yet, the clock is not running.
	TimerWaiting TimerPhase = "WAITING"
	// TimerActive - approved and within the allowed duration.
	TimerActive TimerPhase = "ACTIVE"
	// TimerOverdue - elapsed time exceeds the allowed duration.
	TimerOverdue TimerPhase = "OVERDUE"
	// TimerFinished - the cycle completed, elapsed time no longer meaningful.
	TimerFinished TimerPhase = "FINISHED"
)

// TimerReading is a point-in-time view of the approval clock.
type TimerReading struct {
	Phase          TimerPhase
	ElapsedMinutes int
	// OverdueMinutes is elapsed minus allowance, zero unless Phase is OVERDUE.
	OverdueMinutes int
}

// ComputeTimer derives the approval clock state for an entry at the given
// instant. It is pure: calling it twice with the same inputs yields the same
// reading, so callers may poll at any interval.
func ComputeTimer(entry StaffEntry, now time.Time) TimerReading {
	if entry.Status == StatusCompleted {
		return TimerReading{Phase: TimerFinished}
	}
	if entry.ApprovedAt == nil {
		return TimerReading{Phase: TimerWaiting}
	}

	elapsed := int(now.Sub(*entry.ApprovedAt) / time.Minute)
	if elapsed > entry.AllowedDuration {
		return TimerReading{
			Phase:          TimerOverdue,
			ElapsedMinutes: elapsed,
			OverdueMinutes: elapsed - entry.AllowedDuration,
		}
	}
	return TimerReading{Phase: TimerActive, ElapsedMinutes: elapsed}
}
