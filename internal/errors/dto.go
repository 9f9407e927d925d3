package errors

import (
	"github.com/cockroachdb/errors"
)

// ErrorResponse represents the error report the function binary writes to stderr
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code          string   `json:"code"`
	Display       string   `json:"message"`
	InternalError string   `json:"internal_error,omitempty"`
	Hints         []string `json:"hints,omitempty"`
}

// NewErrorResponse builds the report for err. The first hint becomes the display message.
func NewErrorResponse(err error) ErrorResponse {
	detail := ErrorDetail{
		Code:          ErrCodeSystemError,
		Display:       "an unexpected error occurred",
		InternalError: err.Error(),
	}

	if class, ok := classify(err); ok {
		detail.Code = class.sentinel.Code
		detail.Display = class.sentinel.Message
	}

	if hints := errors.GetAllHints(err); len(hints) > 0 {
		detail.Display = hints[0]
		detail.Hints = hints
	}

	return ErrorResponse{
		Success: false,
		Error:   detail,
	}
}
