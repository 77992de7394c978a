package dto

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/nordavia/airport-aip-service/internal/pkg/exception"
)

// AirportRecord is the fixed-schema result of one AIP extraction. Every
// field is always populated: missing data degrades to the sentinel
// defaults, never to an absent or null field.
type AirportRecord struct {
	AirportCode           string    `json:"airportCode"`
	AirportName           string    `json:"airportName"`
	AdAdministration      string    `json:"adAdministration"`
	AdOperator            string    `json:"adOperator"`
	CustomsAndImmigration string    `json:"customsAndImmigration"`
	ATS                   string    `json:"ats"`
	OperationalRemarks    string    `json:"operationalRemarks"`
	AdministrativeRemarks string    `json:"administrativeRemarks"`
	TrafficTypes          string    `json:"trafficTypes"`
	FireFightingCategory  string    `json:"fireFightingCategory"`
	Contacts              []Contact `json:"contacts"`
	Cached                bool      `json:"cached,omitempty"`
}

// Contact is one phone/email pairing discovered in the publication,
// labeled by the nearest role heading or by position.
type Contact struct {
	Type  string `json:"type"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// LookupRequest is the body of the airport lookup endpoint.
type LookupRequest struct {
	AirportCode string `json:"airportCode" validate:"required,alphanum,min=3,max=4"`
}

func (r *LookupRequest) Bind(_ *http.Request) error {
	r.AirportCode = strings.ToUpper(strings.TrimSpace(r.AirportCode))

	if err := r.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (r *LookupRequest) Validate() error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}
