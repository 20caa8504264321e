package errors

import (
	"net/http"

	"breadmap/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"사용자를 찾을 수 없습니다.",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"이미 등록된 이메일입니다.",
		"",
	)

	// Authentication-related errors
	ErrAuthRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_REQUIRED",
		"로그인이 필요합니다.",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"이메일 또는 비밀번호가 올바르지 않습니다.",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"비밀번호 처리 중 오류가 발생했습니다.",
		"",
	)

	// Bakery-related errors
	ErrBakeryNotFound = NewBaseError(
		http.StatusNotFound,
		"BAKERY_NOT_FOUND",
		"빵집을 찾을 수 없습니다.",
		"",
	)

	ErrBakeryAlreadyExists = NewBaseError(
		http.StatusConflict,
		"BAKERY_ALREADY_EXISTS",
		"이미 등록된 빵집입니다.",
		"",
	)

	// Review-related errors
	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_NOT_FOUND",
		"리뷰를 찾을 수 없습니다.",
		"",
	)

	ErrInvalidRating = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RATING",
		"평점은 1~5 사이여야 합니다.",
		"",
	)

	ErrNotReviewOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_REVIEW_OWNER",
		"본인이 작성한 리뷰만 수정하거나 삭제할 수 있습니다.",
		"",
	)

	// Challenge-related errors
	ErrChallengeNotFound = NewBaseError(
		http.StatusNotFound,
		"CHALLENGE_NOT_FOUND",
		"챌린지를 찾을 수 없습니다.",
		"",
	)

	ErrChallengeItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CHALLENGE_ITEM_NOT_FOUND",
		"챌린지에서 해당 빵집을 찾을 수 없습니다.",
		"",
	)

	ErrDuplicateChallengeItem = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_CHALLENGE_ITEM",
		"이미 챌린지에 추가된 빵집입니다.",
		"",
	)

	// Favorite-related errors
	ErrFavoriteNotFound = NewBaseError(
		http.StatusNotFound,
		"FAVORITE_NOT_FOUND",
		"찜한 빵집을 찾을 수 없습니다.",
		"",
	)

	ErrFavoriteShareNotFound = NewBaseError(
		http.StatusNotFound,
		"FAVORITE_SHARE_NOT_FOUND",
		"공유된 찜목록을 찾을 수 없습니다.",
		"",
	)

	ErrEmptyFavorites = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_FAVORITES",
		"찜목록에 빵집이 없습니다.",
		"",
	)

	// Badge-related errors
	ErrBadgeNotFound = NewBaseError(
		http.StatusNotFound,
		"BADGE_NOT_FOUND",
		"배지를 찾을 수 없습니다.",
		"",
	)

	ErrStatsUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"STATS_UNAVAILABLE",
		"사용자 통계를 불러올 수 없습니다.",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"입력값이 올바르지 않습니다.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"서버 오류가 발생했습니다.",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"접근 권한이 없습니다.",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"요청한 리소스를 찾을 수 없습니다.",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"리소스가 충돌했습니다.",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "서버 오류가 발생했습니다."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap returns the wrapped error so errors.Is / errors.As can inspect the cause
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
