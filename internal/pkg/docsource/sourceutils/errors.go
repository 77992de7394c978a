package sourceutils

import (
	"net/http"

	"github.com/nordavia/airport-aip-service/internal/pkg/exception"
)

var ErrSourceUnavailable = exception.ApplicationError{
	StatusCode: http.StatusInternalServerError,
	Message:    "document source internal error or temporary unavailable",
}

var ErrRetryExceeded = exception.ApplicationError{
	StatusCode: http.StatusInternalServerError,
	Message:    "retry exceeded",
}

var ErrSourceRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "document source rate limit exceeded",
}

var ErrDocumentNotFound = exception.ApplicationError{
	StatusCode: http.StatusNotFound,
	Message:    "aip document not found",
}
