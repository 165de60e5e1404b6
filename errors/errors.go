package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode identifies an application error category.
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = iota
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_INVALID_PAYLOAD
	ErrorCode_BOARD_INVALID
	ErrorCode_MEETING_NOT_FOUND
	ErrorCode_JOB_NOT_FOUND
	ErrorCode_BACKEND_UNAVAILABLE
	ErrorCode_BACKEND_REQUEST_FAILED
	ErrorCode_PROCESSING_FAILED
	ErrorCode_PROCESSING_TIMEOUT
	ErrorCode_REPORT_GENERATION_FAILED
	ErrorCode_CACHE_FAILED
	ErrorCode_UPLOAD_FAILED
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                  "OK",
	ErrorCode_INTERNAL:                 "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:         "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:          "INVALID_PAYLOAD",
	ErrorCode_BOARD_INVALID:            "BOARD_INVALID",
	ErrorCode_MEETING_NOT_FOUND:        "MEETING_NOT_FOUND",
	ErrorCode_JOB_NOT_FOUND:            "JOB_NOT_FOUND",
	ErrorCode_BACKEND_UNAVAILABLE:      "BACKEND_UNAVAILABLE",
	ErrorCode_BACKEND_REQUEST_FAILED:   "BACKEND_REQUEST_FAILED",
	ErrorCode_PROCESSING_FAILED:        "PROCESSING_FAILED",
	ErrorCode_PROCESSING_TIMEOUT:       "PROCESSING_TIMEOUT",
	ErrorCode_REPORT_GENERATION_FAILED: "REPORT_GENERATION_FAILED",
	ErrorCode_CACHE_FAILED:             "CACHE_FAILED",
	ErrorCode_UPLOAD_FAILED:            "UPLOAD_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(c))
}

// AppError is the custom error type for the application.
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is/As.
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors

func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

// Board and meeting errors

func ErrInvalidBoardNumber(value string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_BOARD_INVALID,
		Message:  "Board number must be an integer between 1 and 12",
	}.WithDetail("value", value)
}

func ErrMeetingNotFound(videoID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_MEETING_NOT_FOUND,
		Message:  "Meeting not found",
	}.WithDetail("video_id", videoID)
}

func ErrJobNotFound(jobID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_JOB_NOT_FOUND,
		Message:  "Processing job not found",
	}.WithDetail("job_id", jobID)
}

// Backend integration errors

func ErrBackendUnavailable(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_BACKEND_UNAVAILABLE,
		Message:  "Analysis backend is unavailable",
	}
}

func ErrBackendRequestFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_BACKEND_REQUEST_FAILED,
		Message:  fmt.Sprintf("Backend request failed: %s", operation),
	}
}

func ErrProcessingFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_PROCESSING_FAILED,
		Message:  "Processing failed",
	}
}

func ErrProcessingTimeout(jobID string) AppError {
	return AppError{
		HTTPCode: http.StatusGatewayTimeout,
		Code:     ErrorCode_PROCESSING_TIMEOUT,
		Message:  "Timed out waiting for processing to complete",
	}.WithDetail("job_id", jobID)
}

func ErrUploadFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_UPLOAD_FAILED,
		Message:  "Failed to read uploaded file",
	}
}

// Report and cache errors

func ErrReportGenerationFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_REPORT_GENERATION_FAILED,
		Message:  "Failed to generate report",
	}
}

func ErrCacheFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_CACHE_FAILED,
		Message:  fmt.Sprintf("Cache operation failed: %s", operation),
	}
}
