package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/staff"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/handler/http/response"
	staffsvc "github.com/hostwebit342-png/gatemaster-backend-go/internal/service/staff"
)

type StaffHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	RecordExit(w http.ResponseWriter, r *http.Request)
	RecordReturn(w http.ResponseWriter, r *http.Request)
	PendingQueue(w http.ResponseWriter, r *http.Request)
	Directory(w http.ResponseWriter, r *http.Request)
	Counts(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
}

type StaffHandlerImpl struct {
	staffService *staffsvc.StaffService
}

func NewStaffHandler(staffService *staffsvc.StaffService) StaffHandler {
	return &StaffHandlerImpl{staffService: staffService}
}

// Submit implements StaffHandler.
func (h *StaffHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var submitReq staff.CreateStaffEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&submitReq); err != nil {
		slog.Error("Submit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entry, err := h.staffService.Submit(r.Context(), submitReq)
	if err != nil {
		slog.Error("Submit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Gate pass request submitted", staff.ToResponse(entry, time.Now()))
}

// Decide implements StaffHandler.
func (h *StaffHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var decisionReq staff.DecisionRequest

	if err := json.NewDecoder(r.Body).Decode(&decisionReq); err != nil {
		slog.Error("Decide decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	decisionReq.EntryID = chi.URLParam(r, "id")

	entry, err := h.staffService.Decide(r.Context(), decisionReq)
	if err != nil {
		slog.Error("Decide service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Decision recorded", staff.ToResponse(entry, time.Now()))
}

// RecordExit implements StaffHandler.
func (h *StaffHandlerImpl) RecordExit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	entry, err := h.staffService.RecordExit(r.Context(), id)
	if err != nil {
		slog.Error("RecordExit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Exit recorded", staff.ToResponse(entry, time.Now()))
}

// RecordReturn implements StaffHandler.
func (h *StaffHandlerImpl) RecordReturn(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	entry, err := h.staffService.RecordReturn(r.Context(), id)
	if err != nil {
		slog.Error("RecordReturn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Return recorded", staff.ToResponse(entry, time.Now()))
}

// PendingQueue implements StaffHandler.
func (h *StaffHandlerImpl) PendingQueue(w http.ResponseWriter, r *http.Request) {
	entries, err := h.staffService.PendingQueue(r.Context())
	if err != nil {
		slog.Error("PendingQueue service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, staff.ToResponseList(entries, time.Now()))
}

// Directory implements StaffHandler.
func (h *StaffHandlerImpl) Directory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.staffService.Directory(r.Context())
	if err != nil {
		slog.Error("Directory service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, staff.ToResponseList(entries, time.Now()))
}

// Counts implements StaffHandler.
func (h *StaffHandlerImpl) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.staffService.Counts(r.Context())
	if err != nil {
		slog.Error("Counts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, counts)
}

// GetByID implements StaffHandler.
func (h *StaffHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	entry, err := h.staffService.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("GetByID service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, staff.ToResponse(entry, time.Now()))
}
