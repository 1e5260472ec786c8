package response

import (
	"errors"
	"net/http"

	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/auth"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/settings"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/staff"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/user"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/visitor"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrHRAccessRequired),
		errors.Is(err, user.ErrSecurityAccessRequired):
		Forbidden(w, err.Error())

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffEntryNotFound):
		NotFound(w, "Staff entry not found")
	case errors.Is(err, staff.ErrInvalidDecision):
		BadRequest(w, "Decision must be APPROVED or REJECTED", nil)
	case errors.Is(err, staff.ErrUnknownDepartment):
		BadRequest(w, "Department is not configured", nil)

	// Visitor domain errors
	case errors.Is(err, visitor.ErrVisitorNotFound):
		NotFound(w, "Visitor not found")
	case errors.Is(err, visitor.ErrVisitorAlreadyInside):
		Conflict(w, "Visitor is already inside the premises")

	// Settings domain errors
	case errors.Is(err, settings.ErrDepartmentExists):
		Conflict(w, "Department already exists")
	case errors.Is(err, settings.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, settings.ErrLastDepartment):
		BadRequest(w, "At least one department must remain", nil)
	case errors.Is(err, settings.ErrInvalidTheme):
		BadRequest(w, "Theme must be light or dark", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
