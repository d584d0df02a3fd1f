package ingesting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/social-insights-api/pkg/apiErrors"
)

var (
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrUnreadableFile  = errors.New("unreadable file")
	ErrMissingColumns  = errors.New("missing required columns")
	ErrInvalidDate     = errors.New("invalid date")
	ErrNoRows          = errors.New("file contains no data rows")
)

// ValidationError is a rejected upload. Message is shown to the user as is.
type ValidationError struct {
	Err     error
	Code    string
	Message string
	Missing []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(err error, code, format string, args ...any) *ValidationError {
	return &ValidationError{
		Err:     err,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func missingColumnsError(dataset string, required, missing []string) *ValidationError {
	e := newValidationError(ErrMissingColumns, apiErrors.ErrMissingRequiredData,
		"Missing required %s columns: %s. Expected: %s",
		dataset, strings.Join(missing, ", "), strings.Join(required, ", "))
	e.Missing = missing
	return e
}

// AsValidationError unwraps err to a ValidationError when it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
