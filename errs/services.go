package errs

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// External service errors
var (
	ErrRateLimit          = errors.New("rate limit exceeded")
	ErrServiceUnreachable = errors.New("service unreachable")
	ErrUpstreamRejected   = errors.New("upstream rejected request")
)

// Configuration errors
var (
	ErrEnvironmentVariable = errors.New("environment variable missing")
)

// Background work errors
var (
	ErrCaptureRejected = errors.New("capture rejected")
)

func NewRateLimitError(service string, retryAfter time.Duration) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusTooManyRequests,
		err:        ErrRateLimit,
		Details:    fmt.Sprintf("%s rate limit exceeded, retry after %s", service, retryAfter),
	}
}

func NewServiceUnreachableError(service string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrServiceUnreachable,
		Details:    fmt.Sprintf("Could not reach %s", service),
		Cause:      cause,
	}
}

func NewUpstreamRejectedError(service string, status int, message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrUpstreamRejected,
		Details:    fmt.Sprintf("%s answered %d: %s", service, status, message),
	}
}

func NewEnvironmentVariableError(varName string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrEnvironmentVariable,
		Details:    fmt.Sprintf("%s is not set", varName),
	}
}

// NewCaptureRejectedError reports that the worker pool refused a capture task
func NewCaptureRejectedError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrCaptureRejected,
		Details:    "Too many requests are being processed, try again shortly",
		Cause:      cause,
	}
}

func IsRateLimitError(err error) bool {
	return errors.Is(err, ErrRateLimit)
}

func IsServiceUnreachableError(err error) bool {
	return errors.Is(err, ErrServiceUnreachable)
}

func IsUpstreamRejectedError(err error) bool {
	return errors.Is(err, ErrUpstreamRejected)
}

func IsEnvironmentVariableError(err error) bool {
	return errors.Is(err, ErrEnvironmentVariable)
}

func IsCaptureRejectedError(err error) bool {
	return errors.Is(err, ErrCaptureRejected)
}
