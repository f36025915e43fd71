package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrBadRequest = errors.New("bad request")

	// Simulated backend
	ErrSimulatedFailure = errors.New("simulated backend failure")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Favor errors
var (
	ErrFavorNotFound      = errors.New("favor not found")
	ErrInvalidTransition  = errors.New("favor status does not allow this action")
	ErrOwnFavor           = errors.New("requester cannot accept own favor")
	ErrAlreadyParticipant = errors.New("user already takes part in this favor")
	ErrAlreadyRated       = errors.New("rating already submitted")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
)

// Community errors
var (
	ErrCommunityNotFound  = errors.New("community not found")
	ErrAlreadyMember      = errors.New("user is already a member")
	ErrNotMember          = errors.New("user is not a member")
	ErrPrivateCommunity   = errors.New("community is private")
	ErrCreatorCannotLeave = errors.New("community creator cannot leave")
)

// Other domain errors
var (
	ErrMissionNotFound      = errors.New("mission not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrReportNotFound       = errors.New("report not found")
	ErrReportAlreadyClosed  = errors.New("report already reviewed")
)

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// IsNotFound groups every "missing entity" sentinel.
func IsNotFound(err error) bool {
	return Is(err, ErrResourceNotFound,
		ErrUserNotFound,
		ErrFavorNotFound,
		ErrCommunityNotFound,
		ErrMissionNotFound,
		ErrNotificationNotFound,
		ErrReportNotFound,
	)
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err       error
	Message   string
	StatusMsg string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithStatusMsg adds a user-friendly status message
func (e *CustomError) WithStatusMsg(msg string) *CustomError {
	e.StatusMsg = msg
	return e
}

// UserMessage returns the user-facing message carried by err, if any.
func UserMessage(err error) string {
	var custom *CustomError
	if errors.As(err, &custom) && custom.StatusMsg != "" {
		return custom.StatusMsg
	}
	return ""
}
