package errors

import "net/http"

var (
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidFilter = New(
		"INVALID_FILTER",
		"Filter is not available on this page",
		http.StatusBadRequest,
	)

	ErrSessionNotFound = New(
		"SESSION_NOT_FOUND",
		"Filter session not found or expired",
		http.StatusNotFound,
	)

	ErrNotFound = New(
		"NOT_FOUND",
		"Resource not found",
		http.StatusNotFound,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Authentication required",
		http.StatusUnauthorized,
	)

	ErrReviewNotFound = New(
		"REVIEW_NOT_FOUND",
		"Review not found",
		http.StatusNotFound,
	)

	ErrBackendUnavailable = New(
		"BACKEND_UNAVAILABLE",
		"Catalog backend is unavailable",
		http.StatusServiceUnavailable,
	)

	ErrBackendError = New(
		"BACKEND_ERROR",
		"Catalog backend rejected the request",
		http.StatusBadGateway,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
