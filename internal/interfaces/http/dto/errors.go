package dto

import "net/http"

// Common error codes used by the handlers themselves
const (
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeRateLimited  = "RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// 400 Bad Request
	"VALIDATION_ERROR":  http.StatusBadRequest,
	"INVALID_INPUT":     http.StatusBadRequest,
	"INVALID_EMAIL":     http.StatusBadRequest,
	"INVALID_TITLE":     http.StatusBadRequest,
	"INVALID_CONTENT":   http.StatusBadRequest,
	"INVALID_NAME":      http.StatusBadRequest,
	"INVALID_SCORE":     http.StatusBadRequest,
	"INVALID_CHOICE":    http.StatusBadRequest,
	"INVALID_INTERVAL":  http.StatusBadRequest,
	"INVALID_PLACEMENT": http.StatusBadRequest,
	"INVALID_SCHEDULE":  http.StatusBadRequest,
	"INVALID_FILE":      http.StatusBadRequest,
	"INVALID_CURSOR":    http.StatusBadRequest,
	"INVALID_PROMPT":    http.StatusBadRequest,
	"INVALID_OPTIONS":   http.StatusBadRequest,
	"INVALID_ANSWER":    http.StatusBadRequest,
	"WEAK_PASSWORD":     http.StatusBadRequest,

	// 401 Unauthorized
	"UNAUTHORIZED":        http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,
	"TOKEN_REVOKED":       http.StatusUnauthorized,
	"TOKEN_MAX_REFRESH":   http.StatusUnauthorized,

	// 403 Forbidden
	"FORBIDDEN":           http.StatusForbidden,
	"ACCOUNT_LOCKED":      http.StatusForbidden,
	"ACCOUNT_INACTIVE":    http.StatusForbidden,
	"ACCOUNT_DEACTIVATED": http.StatusForbidden,
	"NOT_ELIGIBLE":        http.StatusForbidden,
	"SELF_VERIFY":         http.StatusForbidden,

	// 404 Not Found
	"NOT_FOUND":          http.StatusNotFound,
	"USER_NOT_FOUND":     http.StatusNotFound,
	"CATEGORY_NOT_FOUND": http.StatusNotFound,
	"TARGET_NOT_FOUND":   http.StatusNotFound,

	// 409 Conflict
	"EMAIL_TAKEN":     http.StatusConflict,
	"SLUG_TAKEN":      http.StatusConflict,
	"ALREADY_EXISTS":  http.StatusConflict,
	"ALREADY_APPLIED": http.StatusConflict,

	// 422 Unprocessable Entity
	"INVALID_STATE":     http.StatusUnprocessableEntity,
	"NOT_PENDING":       http.StatusUnprocessableEntity,
	"NOT_PUBLISHED":     http.StatusUnprocessableEntity,
	"NO_QUESTIONS":      http.StatusUnprocessableEntity,
	"FILE_MISSING":      http.StatusUnprocessableEntity,
	"ALREADY_RESOLVED":  http.StatusUnprocessableEntity,
	"ALREADY_VERIFIED":  http.StatusUnprocessableEntity,
	"ALREADY_PUBLISHED": http.StatusUnprocessableEntity,

	// 429 Too Many Requests
	"RATE_LIMITED": http.StatusTooManyRequests,

	// 500 Internal Server Error
	"INTERNAL_ERROR": http.StatusInternalServerError,
	"STORAGE_ERROR":  http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code, defaulting to 500
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
