package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/settings"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/handler/http/response"
	settingssvc "github.com/hostwebit342-png/gatemaster-backend-go/internal/service/settings"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	AddDepartment(w http.ResponseWriter, r *http.Request)
	RemoveDepartment(w http.ResponseWriter, r *http.Request)
	ToggleNotifications(w http.ResponseWriter, r *http.Request)
	SetTheme(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	settingsService *settingssvc.SettingsService
}

func NewSettingsHandler(settingsService *settingssvc.SettingsService) SettingsHandler {
	return &SettingsHandlerImpl{settingsService: settingsService}
}

// Get implements SettingsHandler.
func (h *SettingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.settingsService.Get(r.Context())
	if err != nil {
		slog.Error("Get settings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, settings.ToResponse(cfg))
}

// AddDepartment implements SettingsHandler.
func (h *SettingsHandlerImpl) AddDepartment(w http.ResponseWriter, r *http.Request) {
	var addReq settings.AddDepartmentRequest

	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		slog.Error("AddDepartment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := addReq.Validate(); err != nil {
		slog.Error("AddDepartment validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	cfg, err := h.settingsService.AddDepartment(r.Context(), addReq.Name)
	if err != nil {
		slog.Error("AddDepartment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department added", settings.ToResponse(cfg))
}

// RemoveDepartment implements SettingsHandler.
func (h *SettingsHandlerImpl) RemoveDepartment(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	cfg, err := h.settingsService.RemoveDepartment(r.Context(), name)
	if err != nil {
		slog.Error("RemoveDepartment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department removed", settings.ToResponse(cfg))
}

// ToggleNotifications implements SettingsHandler.
func (h *SettingsHandlerImpl) ToggleNotifications(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.settingsService.ToggleNotifications(r.Context())
	if err != nil {
		slog.Error("ToggleNotifications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification preference updated", settings.ToResponse(cfg))
}

// SetTheme implements SettingsHandler.
func (h *SettingsHandlerImpl) SetTheme(w http.ResponseWriter, r *http.Request) {
	var themeReq settings.SetThemeRequest

	if err := json.NewDecoder(r.Body).Decode(&themeReq); err != nil {
		slog.Error("SetTheme decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	cfg, err := h.settingsService.SetTheme(r.Context(), settings.Theme(themeReq.Theme))
	if err != nil {
		slog.Error("SetTheme service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Theme updated", settings.ToResponse(cfg))
}
