package surfapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError - неуспешный ответ бэкенда
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("surfquest API error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("surfquest API error: status %d: %s", e.StatusCode, e.Detail)
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

// IsUnauthorized reports whether the backend rejected the credentials.
func IsUnauthorized(err error) bool {
	s := statusOf(err)
	return s == http.StatusUnauthorized || s == http.StatusForbidden
}

// IsClientError reports a 4xx answer.
func IsClientError(err error) bool {
	s := statusOf(err)
	return s >= 400 && s < 500
}

// StatusCode returns the backend status carried by err, or 0.
func StatusCode(err error) int {
	return statusOf(err)
}

func statusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// newAPIError берёт detail или message из JSON, иначе первые 200 символов тела
func newAPIError(status int, body []byte) *APIError {
	e := &APIError{StatusCode: status}

	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Detail != "":
			e.Detail = payload.Detail
			return e
		case payload.Message != "":
			e.Detail = payload.Message
			return e
		}
	}

	text := strings.TrimSpace(string(body))
	if r := []rune(text); len(r) > maxErrorBody {
		text = string(r[:maxErrorBody])
	}
	e.Detail = text
	return e
}
