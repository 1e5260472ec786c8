package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/visitor"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/handler/http/response"
	visitorsvc "github.com/hostwebit342-png/gatemaster-backend-go/internal/service/visitor"
)

type VisitorHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	MarkOut(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListInside(w http.ResponseWriter, r *http.Request)
}

type VisitorHandlerImpl struct {
	visitorService *visitorsvc.VisitorService
}

func NewVisitorHandler(visitorService *visitorsvc.VisitorService) VisitorHandler {
	return &VisitorHandlerImpl{visitorService: visitorService}
}

// Register implements VisitorHandler.
func (h *VisitorHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq visitor.RegisterVisitorRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	v, err := h.visitorService.Register(r.Context(), registerReq)
	if err != nil {
		slog.Error("Register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Visitor registered", visitor.ToResponse(v))
}

// MarkOut implements VisitorHandler.
func (h *VisitorHandlerImpl) MarkOut(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	v, err := h.visitorService.MarkOut(r.Context(), id)
	if err != nil {
		slog.Error("MarkOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Visitor marked out", visitor.ToResponse(v))
}

// List implements VisitorHandler.
func (h *VisitorHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	visitors, err := h.visitorService.List(r.Context())
	if err != nil {
		slog.Error("List service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, visitor.ToResponseList(visitors))
}

// ListInside implements VisitorHandler.
func (h *VisitorHandlerImpl) ListInside(w http.ResponseWriter, r *http.Request) {
	visitors, err := h.visitorService.ListInside(r.Context())
	if err != nil {
		slog.Error("ListInside service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, visitor.ToResponseList(visitors))
}
