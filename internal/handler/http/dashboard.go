package http

import (
	"log/slog"
	"net/http"

	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/dashboard"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/handler/http/response"
	dashboardsvc "github.com/hostwebit342-png/gatemaster-backend-go/internal/service/dashboard"
)

type DashboardHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	Insights(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService *dashboardsvc.DashboardService
}

func NewDashboardHandler(dashboardService *dashboardsvc.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Summary implements DashboardHandler.
func (h *DashboardHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.Summary(r.Context())
	if err != nil {
		slog.Error("Summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Insights implements DashboardHandler. Advisory only, so it always
// returns 200 with whatever text the provider produced.
func (h *DashboardHandlerImpl) Insights(w http.ResponseWriter, r *http.Request) {
	text := h.dashboardService.Insights(r.Context())
	response.Success(w, dashboard.InsightResponse{Text: text})
}
