// Package extract turns the linearized text of an AIP airport entry into
// a fixed-schema AirportRecord. It is pure text processing: no I/O, no
// shared state, and no failure mode that escapes the package boundary.
// Malformed or missing input degrades to sentinel-filled fields.
package extract

import (
	"log/slog"
	"strings"

	"github.com/nordavia/airport-aip-service/internal/app/dto"
)

// Extract locates the AD 2.1/2.2/2.3/2.6 subsections for the airport in
// documentText and assembles the record. Dialect carries the per-country
// anchor and label overrides. The result is always fully populated; when
// the airport partition cannot be found at all, every field defaults and
// the name derives from the code alone.
func Extract(airportCode, documentText string, d Dialect) dto.AirportRecord {
	code := strings.ToUpper(strings.TrimSpace(airportCode))

	record := dto.AirportRecord{
		AirportCode:           code,
		AirportName:           code,
		AdAdministration:      "NIL",
		AdOperator:            "NIL",
		CustomsAndImmigration: "NIL",
		ATS:                   "NIL",
		OperationalRemarks:    "NIL",
		AdministrativeRemarks: "NIL",
		TrafficTypes:          "Not specified",
		FireFightingCategory:  "Not specified",
		Contacts:              []dto.Contact{},
	}

	if documentText == "" {
		return record
	}

	sections := recoverSections(code, func() Sections {
		return LocateSections(documentText, code, d)
	})
	if !sections.Partition.Found() {
		return record
	}

	record.AirportName = recoverString(code, "airportName", code, func() string {
		return AirportName(documentText, sections.Name, code)
	})

	if sections.Hours.Found() {
		hours := recoverHours(code, func() HoursFields {
			return MatchOperationalHours(sections.Hours.Of(documentText), d)
		})
		record.AdAdministration = hours.AdAdministration
		record.AdOperator = hours.AdOperator
		record.CustomsAndImmigration = hours.CustomsAndImmigration
		record.ATS = hours.ATS

		record.OperationalRemarks = recoverString(code, "operationalRemarks", "NIL", func() string {
			return OperationalRemarks(documentText, sections.Hours)
		})
	}

	if sections.Geo.Found() {
		record.TrafficTypes = recoverString(code, "trafficTypes", "Not specified", func() string {
			return TrafficTypes(sections.Geo.Of(documentText))
		})
		record.AdministrativeRemarks = recoverString(code, "administrativeRemarks", "NIL", func() string {
			return AdministrativeRemarks(documentText, sections.Geo)
		})
	}

	if sections.Fire.Found() {
		record.FireFightingCategory = recoverString(code, "fireFightingCategory", "Not specified", func() string {
			return FireFightingCategory(sections.Fire.Of(documentText))
		})
	}

	record.Contacts = recoverContacts(code, func() []dto.Contact {
		return ExtractContacts(sections.Partition.Of(documentText), d)
	})

	return record
}

// The recover helpers confine extractor faults to the field they hit: the
// fault is logged and the field keeps its sentinel default.

func recoverString(code, field, fallback string, fn func() string) (out string) {
	out = fallback

	defer logExtractorFault(code, field)

	return fn()
}

func recoverSections(code string, fn func() Sections) (out Sections) {
	defer logExtractorFault(code, "sections")

	return fn()
}

func recoverHours(code string, fn func() HoursFields) (out HoursFields) {
	out = HoursFields{
		AdAdministration:      "NIL",
		AdOperator:            "NIL",
		CustomsAndImmigration: "NIL",
		ATS:                   "NIL",
	}

	defer logExtractorFault(code, "operationalHours")

	return fn()
}

func recoverContacts(code string, fn func() []dto.Contact) (out []dto.Contact) {
	out = []dto.Contact{}

	defer logExtractorFault(code, "contacts")

	return fn()
}

func logExtractorFault(code, field string) {
	if r := recover(); r != nil {
		slog.Warn("extractor fault, field defaulted",
			slog.String("airport_code", code),
			slog.String("field", field),
			slog.Any("panic", r))
	}
}
