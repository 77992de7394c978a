package extract

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestMatchOperationalHours_Closure(t *testing.T) {
	d := DefaultDialect()

	matchRequest := func(section string, want HoursFields) func(t *testing.T) {
		return func(t *testing.T) {
			got := MatchOperationalHours(section, d)

			diff := cmp.Diff(want, got)
			if diff != "" {
				t.Fatalf("MatchOperationalHours mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("all_fields_present", matchRequest(
		"AD 2.3 OPERATIONAL HOURS AD Administration H24 AD Operator H24 Customs and immigration H24 ATS H24",
		HoursFields{
			AdAdministration:      "H24",
			AdOperator:            "H24",
			CustomsAndImmigration: "H24",
			ATS:                   "H24",
		}))

	t.Run("empty_section_all_nil", matchRequest("", HoursFields{
		AdAdministration:      "NIL",
		AdOperator:            "NIL",
		CustomsAndImmigration: "NIL",
		ATS:                   "NIL",
	}))

	t.Run("tower_alias_maps_to_operator", matchRequest("TWR: H24", HoursFields{
		AdAdministration:      "NIL",
		AdOperator:            "H24",
		CustomsAndImmigration: "NIL",
		ATS:                   "NIL",
	}))

	t.Run("customs_prior_notice", matchRequest("Customs: PN", HoursFields{
		AdAdministration:      "NIL",
		AdOperator:            "NIL",
		CustomsAndImmigration: "On request",
		ATS:                   "NIL",
	}))

	t.Run("customs_may_be_requested", matchRequest(
		"Customs and immigration May be requested during AD Operator hours",
		HoursFields{
			AdAdministration:      "NIL",
			AdOperator:            "NIL",
			CustomsAndImmigration: "On request",
			ATS:                   "NIL",
		}))

	t.Run("time_ranges_pass_through", matchRequest(
		"AD Administration MON-FRI 0600-2200 AD Operator 0500 - 2100",
		HoursFields{
			AdAdministration:      "MON-FRI 0600-2200",
			AdOperator:            "0500-2100",
			CustomsAndImmigration: "NIL",
			ATS:                   "NIL",
		}))

	t.Run("reporting_ats_excluded", matchRequest(
		"Reporting ATS office 0600-1800 nothing here for the tower",
		HoursFields{
			AdAdministration:      "NIL",
			AdOperator:            "NIL",
			CustomsAndImmigration: "NIL",
			ATS:                   "NIL",
		}))

	t.Run("second_ats_occurrence_wins_after_excluded_one", matchRequest(
		"Reporting ATS office hours vary. ATS H24",
		HoursFields{
			AdAdministration:      "NIL",
			AdOperator:            "NIL",
			CustomsAndImmigration: "NIL",
			ATS:                   "H24",
		}))

	t.Run("label_without_adjacent_token_stays_nil", matchRequest(
		"AD Operator see the aerodrome manual for the applicable schedule of this aerodrome and its services, "+
			"which is published separately for operators and handling agents of this aerodrome",
		HoursFields{
			AdAdministration:      "NIL",
			AdOperator:            "NIL",
			CustomsAndImmigration: "NIL",
			ATS:                   "NIL",
		}))
}

func TestNormalizeHours_Closure(t *testing.T) {
	normalizeRequest := func(raw, want string) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, NormalizeHours(raw))
		}
	}

	t.Run("h24", normalizeRequest("H24", "H24"))
	t.Run("h24_spaced", normalizeRequest("H 24", "H24"))
	t.Run("24_hr", normalizeRequest("24 HR", "H24"))
	t.Run("24_hours_lowercase", normalizeRequest("24 hours", "H24"))
	t.Run("nil", normalizeRequest("NIL", "NIL"))
	t.Run("closed", normalizeRequest("closed", "NIL"))
	t.Run("none", normalizeRequest("none", "NIL"))
	t.Run("plain_range", normalizeRequest("0600-2200", "0600-2200"))
	t.Run("range_with_gaps", normalizeRequest("0600 - 2200", "0600-2200"))
	t.Run("range_with_days", normalizeRequest("mon-fri 0600-2200", "MON-FRI 0600-2200"))
	t.Run("unrecognized_passes_through", normalizeRequest("  SR-SS see remarks  ", "SR-SS see remarks"))
}

func TestNormalizeCustomsHours_Closure(t *testing.T) {
	d := DefaultDialect()

	normalizeRequest := func(raw, want string) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, NormalizeCustomsHours(raw, d))
		}
	}

	t.Run("pn", normalizeRequest("PN", "On request"))
	t.Run("on_request", normalizeRequest("on request", "On request"))
	t.Run("may_be_requested", normalizeRequest("May be requested", "On request"))
	t.Run("o_slash_r", normalizeRequest("O/R", "On request"))
	t.Run("h24_still_normalizes", normalizeRequest("H24", "H24"))
	t.Run("nil_still_normalizes", normalizeRequest("NIL", "NIL"))
}
