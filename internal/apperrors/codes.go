package apperrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Resources
	CodeNotFound            ErrorCode = "NOT_FOUND"
	CodeUserNotFound        ErrorCode = "USER_NOT_FOUND"
	CodeProfileNotFound     ErrorCode = "PROFILE_NOT_FOUND"
	CodeJobNotFound         ErrorCode = "JOB_NOT_FOUND"
	CodeApplicationNotFound ErrorCode = "APPLICATION_NOT_FOUND"

	// Business rules
	CodeUsernameTaken  ErrorCode = "USERNAME_TAKEN"
	CodeEmailTaken     ErrorCode = "EMAIL_TAKEN"
	CodeAlreadyApplied ErrorCode = "ALREADY_APPLIED"
	CodeMissingResume  ErrorCode = "MISSING_RESUME"
	CodeInvalidState   ErrorCode = "INVALID_STATE"
	CodeJobNotOpen     ErrorCode = "JOB_NOT_OPEN"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeStorageError  ErrorCode = "STORAGE_ERROR"
)
