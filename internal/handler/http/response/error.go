package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// The first failure is the headline; every failure is in details.
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		ValidationError(w, validationErrs[0].Message, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// User domain errors
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already exists")

	// Leave domain errors
	case errors.Is(err, leave.ErrNoLeaveRecords):
		NotFound(w, "No leave records found for the selected date")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
