package service

import (
	"net/http"

	"github.com/nordavia/airport-aip-service/internal/pkg/exception"
)

var ErrAirportNotFound = exception.ApplicationError{
	Message:    "no aip entry published for this airport",
	StatusCode: http.StatusNotFound,
}
