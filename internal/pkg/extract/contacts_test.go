package extract

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/nordavia/airport-aip-service/internal/app/dto"
)

func TestExtractContacts_Closure(t *testing.T) {
	d := DefaultDialect()

	contactsRequest := func(partition string, want []dto.Contact) func(t *testing.T) {
		return func(t *testing.T) {
			got := ExtractContacts(partition, d)

			diff := cmp.Diff(want, got)
			if diff != "" {
				t.Fatalf("ExtractContacts mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("repeated_number_yields_one_contact", contactsRequest(
		"AD Operator, address, telephone\n"+
			"AD Operator: Riga International Airport\n"+
			"Tel: +371 67207135\n"+
			"Fax: +371 67207135\n"+
			"Types of traffic permitted IFR/VFR",
		[]dto.Contact{
			{Type: "AD Operator Contact 1", Phone: "+371 67207135"},
		}))

	t.Run("email_after_phone_joins_same_contact", contactsRequest(
		"AD Operator, address, telephone, email\n"+
			"AD Operator: Tel: +371 67207135, E-mail: ops@riga.lv\n"+
			"AD 2.3 OPERATIONAL HOURS",
		[]dto.Contact{
			{Type: "AD Operator Contact 1", Phone: "+371 67207135", Email: "ops@riga.lv"},
		}))

	t.Run("nearest_role_label_wins", contactsRequest(
		"AD Operator, address, telephone\n"+
			"AD Operator: Tel: +371 67207135\n"+
			"Handling Agent: Tel: +371 67207890\n"+
			"AD 2.3 OPERATIONAL HOURS",
		[]dto.Contact{
			{Type: "AD Operator Contact 1", Phone: "+371 67207135"},
			{Type: "Handling Agent Contact 1", Phone: "+371 67207890"},
		}))

	t.Run("blank_line_severs_role_label", contactsRequest(
		"AD Operator, address, telephone\n\nTel: +371 67207400\nAD 2.3",
		[]dto.Contact{
			{Type: "Contact 1", Phone: "+371 67207400"},
		}))

	t.Run("glued_table_text_stripped_from_email", contactsRequest(
		"AD Operator, address, telephone\nE-mail: ops@lgs.lvAFS: EVRAYDYX\nAD 2.3",
		[]dto.Contact{
			{Type: "AD Operator Contact 1", Email: "ops@lgs.lv"},
		}))

	t.Run("no_anchor_means_no_contacts", contactsRequest(
		"No contact information appears anywhere in this text",
		[]dto.Contact{}))

	t.Run("short_digit_runs_ignored", contactsRequest(
		"AD Operator, address, telephone\nElevation 36 FT / 11 M\nAD 2.3",
		[]dto.Contact{}))
}

func TestExtractContacts_PhonePrefixFiltersLocalNoise(t *testing.T) {
	d := DefaultDialect()
	d.PhonePrefix = "+371"

	got := ExtractContacts(
		"AD Operator, address, telephone\n"+
			"Fax: 67207135\n"+
			"Tel: +371 67207135\n"+
			"AD 2.3 OPERATIONAL HOURS", d)

	assert.Len(t, got, 1)
	assert.Equal(t, "+371 67207135", got[0].Phone)
}

func TestNormalizePhone_Closure(t *testing.T) {
	phoneRequest := func(raw, want string) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, normalizePhone(raw))
		}
	}

	t.Run("kept_as_printed", phoneRequest("+371 67207135", "+371 67207135"))
	t.Run("surrounding_punctuation_trimmed", phoneRequest("(+371) 67207135", "+371) 67207135"))
	t.Run("too_few_digits_rejected", phoneRequest("371 20", ""))
	t.Run("too_long_rejected", phoneRequest("371 672 071 350 000 123", ""))
}
