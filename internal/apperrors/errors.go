package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

type ErrorCode string

// AppError is the application error carried from services up to the HTTP
// layer. HTTPCode and the wrapped cause never leave the process; only
// Code, Message and Details are serialized.
type AppError struct {
	Code     ErrorCode `json:"code"`
	Message  string    `json:"message"`
	Details  any       `json:"details,omitempty"`
	Err      error     `json:"-"`
	HTTPCode int       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match any AppError against its sentinel by code, so
// wrapped copies (WithDetails, WithError) still compare equal.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !stderrors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// WithDetails returns a copy carrying extra user-facing detail.
func (e *AppError) WithDetails(details any) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// WithError returns a copy carrying an internal cause.
func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
		Details any       `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Predefined errors
var (
	// Authentication
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid username or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	// Ownership violations surface as a generic denial on purpose; the
	// response never explains which check failed.
	ErrForbidden = New(CodeForbidden, "Access denied", http.StatusForbidden)

	// Users and profiles
	ErrUserNotFound    = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrProfileNotFound = New(CodeProfileNotFound, "Profile not found", http.StatusNotFound)
	ErrUsernameTaken   = New(CodeUsernameTaken, "Username already exists", http.StatusConflict)
	ErrEmailTaken      = New(CodeEmailTaken, "Email already exists", http.StatusConflict)
	ErrWeakPassword    = New(CodeWeakPassword, "Password must be at least 6 characters", http.StatusBadRequest)
	ErrInvalidUserRole = New(CodeInvalidUserRole, "Invalid user role", http.StatusBadRequest)

	// Validation
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)

	// Jobs
	ErrJobNotFound = New(CodeJobNotFound, "Job not found", http.StatusNotFound)
	ErrJobNotOpen  = New(CodeJobNotOpen, "This job is no longer accepting applications", http.StatusBadRequest)

	// Applications
	ErrApplicationNotFound = New(CodeApplicationNotFound, "Application not found", http.StatusNotFound)
	ErrAlreadyApplied      = New(CodeAlreadyApplied, "You have already applied for this job", http.StatusConflict)
	ErrMissingResume       = New(CodeMissingResume, "Please upload your resume in your profile before applying", http.StatusBadRequest)
	ErrInvalidState        = New(CodeInvalidState, "The operation is not allowed in the current state", http.StatusConflict)

	// Storage failures carry a generic retry-later message; the wrapped
	// driver error is logged, never returned to the client.
	ErrStorage = New(CodeStorageError, "A temporary problem occurred, please try again later", http.StatusInternalServerError)
)

func ValidationError(details any) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func StorageError(err error) *AppError {
	return ErrStorage.WithError(err)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}
