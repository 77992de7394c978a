package extract

import (
	"regexp"
	"strings"
)

// HoursFields holds the four AD 2.3 values after normalization.
type HoursFields struct {
	AdAdministration      string
	AdOperator            string
	CustomsAndImmigration string
	ATS                   string
}

// hour-like tokens, most specific first
var hourTokenRe = regexp.MustCompile(`(?i)(` +
	`H\s*24` +
	`|24\s*(?:HOURS|HRS|HR|H)\b` +
	`|(?:(?:MON|TUE|WED|THU|FRI|SAT|SUN)(?:\s*-\s*(?:MON|TUE|WED|THU|FRI|SAT|SUN))?\s+)?\d{4}\s*-\s*\d{4}(?:\s*UTC)?` +
	`|SR\s*-\s*SS` +
	`|MAY\s+BE\s+REQUESTED` +
	`|ON\s+REQUEST` +
	`|PRIOR\s+NOTICE` +
	`|\bO/R\b` +
	`|\bPN\b` +
	`|\bNIL\b` +
	`|\bCLOSED\b` +
	`|\bCLSD\b` +
	`|\bNONE\b` +
	`|\bHJ\b` +
	`|\bHX\b` +
	`)`)

// how far past a field label an hour token may sit and still count as its value
const labelWindow = 160

// MatchOperationalHours scans the AD 2.3 span for the four hour fields.
// Every field is tracked explicitly: a field with no alias match, or with
// an alias but no adjacent hour-like token, is forced to "NIL" so that a
// field can never be silently skipped.
func MatchOperationalHours(section string, d Dialect) HoursFields {
	var fields HoursFields

	adminRaw, adminFound := matchLabelValue(section, d.AdminLabels)
	operatorRaw, operatorFound := matchLabelValue(section, d.OperatorLabels)
	customsRaw, customsFound := matchLabelValue(section, d.CustomsLabels)
	atsRaw, atsFound := matchLabelValue(section, d.ATSLabels)

	if adminFound {
		fields.AdAdministration = NormalizeHours(adminRaw)
	}
	if operatorFound {
		fields.AdOperator = NormalizeHours(operatorRaw)
	}
	if customsFound {
		fields.CustomsAndImmigration = NormalizeCustomsHours(customsRaw, d)
	}
	if atsFound {
		fields.ATS = NormalizeHours(atsRaw)
	}

	// force the unmatched fields, never leave one empty
	if !adminFound {
		fields.AdAdministration = "NIL"
	}
	if !operatorFound {
		fields.AdOperator = "NIL"
	}
	if !customsFound {
		fields.CustomsAndImmigration = "NIL"
	}
	if !atsFound {
		fields.ATS = "NIL"
	}

	return fields
}

// matchLabelValue tries each alias in priority order and, per alias, each
// occurrence in document order. The first occurrence with an hour-like
// token inside the adjacent window wins.
func matchLabelValue(section string, labels []Label) (string, bool) {
	for _, label := range labels {
		locs := label.re.FindAllStringIndex(section, -1)
		for _, loc := range locs {
			if label.excludedAt(section, loc[0]) {
				continue
			}

			end := loc[1] + labelWindow
			if end > len(section) {
				end = len(section)
			}

			if token := hourTokenRe.FindString(section[loc[1]:end]); token != "" {
				return token, true
			}
		}
	}

	return "", false
}

var (
	h24Re       = regexp.MustCompile(`(?i)^(?:H\s*24|24\s*(?:HOURS|HRS|HR|H))$`)
	nilHoursRe  = regexp.MustCompile(`(?i)^(?:NIL|CLOSED|CLSD|NONE)$`)
	timeRangeRe = regexp.MustCompile(`(?i)^(?:(?:MON|TUE|WED|THU|FRI|SAT|SUN)(?:-(?:MON|TUE|WED|THU|FRI|SAT|SUN))?\s+)?\d{4}-\d{4}(?:\s*UTC)?$`)
	dashGapRe   = regexp.MustCompile(`\s*-\s*`)
	spaceRunRe  = regexp.MustCompile(`\s+`)
)

// NormalizeHours maps a raw matched hour expression to canonical form.
// Priority: H24 variants, then explicit NIL variants, then HHMM-HHMM
// ranges (whitespace-normalized). An unrecognized value passes through
// trimmed rather than being discarded: a present-but-odd value is more
// informative than a false "NIL".
func NormalizeHours(raw string) string {
	value := spaceRunRe.ReplaceAllString(strings.TrimSpace(raw), " ")
	compact := dashGapRe.ReplaceAllString(value, "-")

	switch {
	case h24Re.MatchString(value):
		return "H24"
	case nilHoursRe.MatchString(value):
		return "NIL"
	case timeRangeRe.MatchString(compact):
		return strings.ToUpper(compact)
	}

	return value
}

// NormalizeCustomsHours additionally recognizes prior-notice phrasings,
// which only the customs/immigration field uses.
func NormalizeCustomsHours(raw string, d Dialect) string {
	value := strings.TrimSpace(raw)
	if onRequestPhraseRe(d).MatchString(value) {
		return "On request"
	}

	return NormalizeHours(value)
}

func onRequestPhraseRe(d Dialect) *regexp.Regexp {
	phrases := make([]string, 0, len(d.OnRequestPhrases))
	for _, phrase := range d.OnRequestPhrases {
		phrases = append(phrases, regexp.QuoteMeta(phrase))
	}

	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(phrases, "|") + `)\b`)
}
