package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// remarks are display-bounded; truncation happens at a word boundary
const remarksMaxLen = 200

var (
	remarksLabelRe  = regexp.MustCompile(`(?i)^REMARKS?[:\s]*`)
	nextHeadingRe   = regexp.MustCompile(`(?i)\w+\s+AD\s+2\.\d+`)
	copyrightTailRe = regexp.MustCompile(`(?s)©.*$`)
	airacFooterRe   = regexp.MustCompile(`(?is)AIP\s+\S+\s+AIRAC.*$`)
	pageFooterRe    = regexp.MustCompile(`(?i)PAGE\s+\d+(?:\s+OF\s+\d+)?`)
)

// AdministrativeRemarks isolates the free-text remarks of the AD 2.2 span:
// the text between the section's structured fields and the AD 2.3 heading.
func AdministrativeRemarks(doc string, geoSpan Span) string {
	section := geoSpan.Of(doc)
	idx := strings.Index(strings.ToUpper(section), "REMARKS")
	if idx == -1 {
		return "NIL"
	}

	return cleanRemarks(section[idx:])
}

// OperationalRemarks isolates the remarks trailing the AD 2.3 fields, up
// to the AD 2.4 heading (the hours span already ends there). The last
// remarks label in the span wins so per-field notes are skipped.
func OperationalRemarks(doc string, hoursSpan Span) string {
	section := hoursSpan.Of(doc)
	idx := strings.LastIndex(strings.ToUpper(section), "REMARKS")
	if idx == -1 {
		return "NIL"
	}

	return cleanRemarks(section[idx:])
}

// cleanRemarks strips the label, heading spill-over and footer noise, then
// collapses whitespace and caps the result for display.
func cleanRemarks(text string) string {
	text = remarksLabelRe.ReplaceAllString(text, "")

	if loc := nextHeadingRe.FindStringIndex(text); loc != nil {
		text = text[:loc[0]]
	}

	text = copyrightTailRe.ReplaceAllString(text, "")
	text = airacFooterRe.ReplaceAllString(text, "")
	text = pageFooterRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(spaceRunRe.ReplaceAllString(text, " "))

	// too short to be real remarks, just a stray NIL or label residue
	if utf8.RuneCountInString(text) <= 5 {
		return "NIL"
	}

	return truncateAtWord(text, remarksMaxLen)
}

// truncateAtWord cuts at most max runes, never mid-word, and marks the cut
// with an ellipsis.
func truncateAtWord(text string, max int) string {
	if utf8.RuneCountInString(text) <= max {
		return text
	}

	cut := string([]rune(text)[:max])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}

	return strings.TrimRight(cut, " ,;.") + "…"
}
