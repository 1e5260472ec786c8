package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/gatelog"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/handler/http/response"
	gatelogsvc "github.com/hostwebit342-png/gatemaster-backend-go/internal/service/gatelog"
)

type GateLogHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type GateLogHandlerImpl struct {
	logService *gatelogsvc.GateLogService
}

func NewGateLogHandler(logService *gatelogsvc.GateLogService) GateLogHandler {
	return &GateLogHandlerImpl{logService: logService}
}

// List implements GateLogHandler. Supports ?q= text search and
// ?type=visitor|staff filtering.
func (h *GateLogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	typeFilter := r.URL.Query().Get("type")

	logs, err := h.logService.Search(r.Context(), query, typeFilter)
	if err != nil {
		slog.Error("List logs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, gatelog.ToResponseList(logs))
}

// Export implements GateLogHandler. Streams the filtered log as a CSV
// attachment.
func (h *GateLogHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	typeFilter := r.URL.Query().Get("type")

	logs, err := h.logService.Search(r.Context(), query, typeFilter)
	if err != nil {
		slog.Error("Export logs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := gatelogsvc.ExportFilename(time.Now())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(gatelogsvc.ExportCSV(logs))); err != nil {
		slog.Error("Export logs write error", "error", err)
	}
}
