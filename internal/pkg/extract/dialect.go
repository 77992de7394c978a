package extract

import (
	"regexp"
	"strings"
)

// Label is one alias for an AD 2.3 field. The pattern is matched
// case-insensitively; excludeBefore lists words that disqualify an
// occurrence when they immediately precede it (e.g. "Reporting ATS").
type Label struct {
	re            *regexp.Regexp
	excludeBefore []string
}

// NewLabel compiles a field label alias.
func NewLabel(pattern string, excludeBefore ...string) Label {
	return Label{
		re:            regexp.MustCompile(`(?i)` + pattern),
		excludeBefore: excludeBefore,
	}
}

// excludedAt reports whether the word right before pos disqualifies the match.
func (l Label) excludedAt(text string, pos int) bool {
	if len(l.excludeBefore) == 0 {
		return false
	}

	head := strings.TrimRight(text[:pos], " \t")
	cut := strings.LastIndexAny(head, " \t\n")
	word := strings.ToUpper(head[cut+1:])

	for _, excluded := range l.excludeBefore {
		if word == strings.ToUpper(excluded) {
			return true
		}
	}

	return false
}

// Dialect is the per-country extractor configuration: section heading
// aliases, field label aliases and contact conventions. The matching
// algorithm is written once; country differences live here as data.
type Dialect struct {
	Name string

	// Section heading aliases, tried in priority order against the
	// airport partition. All comparisons are uppercase substring finds.
	NameHeadings     []string
	GeoHeadings      []string
	HoursHeadings    []string
	HoursEndHeadings []string
	FireHeadings     []string
	FireEndHeadings  []string

	// AD 2.3 field label aliases, tried in priority order. The first
	// alias with an adjacent hour-like token wins the field.
	AdminLabels    []Label
	OperatorLabels []Label
	CustomsLabels  []Label
	ATSLabels      []Label

	// Phrasings that mean customs/immigration is available on demand.
	OnRequestPhrases []string

	// Contact section anchors and role labels, in display form.
	ContactAnchors []string
	ContactEnders  []string
	RoleLabels     []string

	// Country dialling prefix hint, e.g. "+371". Empty accepts any number.
	PhonePrefix string
}

// DefaultDialect covers the Eurocontrol-style eAIP layout most
// national publications follow.
func DefaultDialect() Dialect {
	return Dialect{
		Name: "eurocontrol",

		NameHeadings:     []string{"AERODROME LOCATION INDICATOR AND NAME", "AD 2.1"},
		GeoHeadings:      []string{"AD 2.2", "AERODROME GEOGRAPHICAL"},
		HoursHeadings:    []string{"AD 2.3 OPERATIONAL HOURS", "AD 2.3", "OPERATIONAL HOURS"},
		HoursEndHeadings: []string{"AD 2.4"},
		FireHeadings:     []string{"AD 2.6", "RESCUE AND FIRE FIGHTING"},
		FireEndHeadings:  []string{"AD 2.7"},

		AdminLabels: []Label{
			NewLabel(`AD\s+Administration`),
			NewLabel(`Aerodrome\s+Administration`),
		},
		OperatorLabels: []Label{
			NewLabel(`AD\s+Operator`),
			NewLabel(`\b1\s*AD\b`),
			NewLabel(`\bTWR\b`),
		},
		CustomsLabels: []Label{
			NewLabel(`Customs\s+and\s+immigration`),
			NewLabel(`\bCustoms\b`),
			NewLabel(`\bImmigration\b`),
		},
		ATSLabels: []Label{
			NewLabel(`\bATS\b`, "Reporting", "MET"),
		},

		OnRequestPhrases: []string{
			"MAY BE REQUESTED",
			"ON REQUEST",
			"PRIOR NOTICE",
			"O/R",
			"PN",
		},

		ContactAnchors: []string{
			"AD OPERATOR, ADDRESS, TELEPHONE",
			"AD OPERATOR",
		},
		ContactEnders: []string{
			"TYPES OF TRAFFIC",
			"AD 2.3",
		},
		RoleLabels: []string{
			"AD Operator",
			"AD Administration",
			"Handling Agent",
			"Owner",
			"ATS",
		},
	}
}
