package dashboardclient

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotAuthenticated is returned before any request is sent when the
	// session holds no token.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrSuperseded is returned by Loader when a newer load was issued while
	// this one was in flight.
	ErrSuperseded = errors.New("superseded by a newer request")
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Code)
	}
	return e.Message
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// newAPIError reads the message field of an error body, then the error
// field, and falls back on a generic message naming the status.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{
		Status:  status,
		Message: fmt.Sprintf("Request failed with status %d", status),
	}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return apiErr
	}

	apiErr.Code = parsed.Code
	switch {
	case strings.TrimSpace(parsed.Message) != "":
		apiErr.Message = parsed.Message
	case strings.TrimSpace(parsed.Error) != "":
		apiErr.Message = parsed.Error
	}
	return apiErr
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}
