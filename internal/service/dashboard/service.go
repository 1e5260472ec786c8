package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/dashboard"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/staff"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/visitor"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/pkg/genai"
)

// InsightProvider produces advisory free-text analysis of gate activity. It
// never fails: a provider that cannot answer returns its fallback text.
type InsightProvider interface {
	GenerateInsights(ctx context.Context, prompt string) string
}

// DashboardService aggregates the day's gate traffic for the overview cards
// and the advisory insight panel.
type DashboardService struct {
	staffRepo   staff.StaffRepository
	visitorRepo visitor.VisitorRepository
	insights    InsightProvider
}

func NewDashboardService(staffRepo staff.StaffRepository, visitorRepo visitor.VisitorRepository, insights InsightProvider) *DashboardService {
	return &DashboardService{
		staffRepo:   staffRepo,
		visitorRepo: visitorRepo,
		insights:    insights,
	}
}

func (s *DashboardService) Summary(ctx context.Context) (dashboard.Summary, error) {
	today := time.Now().Truncate(24 * time.Hour)

	visitorsToday, err := s.visitorRepo.ListByDate(ctx, today)
	if err != nil {
		return dashboard.Summary{}, fmt.Errorf("failed to list today's visitors: %w", err)
	}

	summary := dashboard.Summary{
		VisitorsToday: int64(len(visitorsToday)),
	}
	for _, v := range visitorsToday {
		if v.Status == visitor.StatusIn {
			summary.VisitorsInside++
		}
	}

	counts := map[staff.Status]*int64{
		staff.StatusPending:   &summary.StaffPending,
		staff.StatusApproved:  &summary.StaffApproved,
		staff.StatusOut:       &summary.StaffOut,
		staff.StatusCompleted: &summary.StaffCompleted,
	}
	for status, target := range counts {
		n, err := s.staffRepo.CountByStatus(ctx, status)
		if err != nil {
			return dashboard.Summary{}, fmt.Errorf("failed to count %s entries: %w", status, err)
		}
		*target = n
	}

	return summary, nil
}

// Insights builds the day's activity snapshot and asks the advisory provider
// for analysis. The result is always a displayable string.
func (s *DashboardService) Insights(ctx context.Context) string {
	today := time.Now().Truncate(24 * time.Hour)

	visitorsToday, err := s.visitorRepo.ListByDate(ctx, today)
	if err != nil {
		slog.Error("Failed to load visitors for insight snapshot", "error", err)
		return genai.FallbackMessage
	}
	staffToday, err := s.staffRepo.ListByDate(ctx, today)
	if err != nil {
		slog.Error("Failed to load staff entries for insight snapshot", "error", err)
		return genai.FallbackMessage
	}

	return s.insights.GenerateInsights(ctx, buildPrompt(visitorsToday, staffToday))
}

func buildPrompt(visitors []visitor.Visitor, entries []staff.StaffEntry) string {
	var b strings.Builder
	b.WriteString("Analyze the following gate activity data and provide 3 key security insights or anomalies.\n")
	b.WriteString("Keep it professional and concise for a factory gate management report.\n\n")

	b.WriteString("Visitors Today:\n")
	for _, v := range visitors {
		fmt.Fprintf(&b, "- %s, purpose %s, status %s\n", v.Name, v.Purpose, v.Status)
	}

	b.WriteString("\nStaff Status:\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "- %s (%s), status %s\n", e.Name, e.EmployeeCode, e.Status)
	}

	return b.String()
}
