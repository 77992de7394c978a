package extract

import (
	"regexp"
	"strings"
)

var (
	ifrRe = regexp.MustCompile(`\bIFR\b`)
	vfrRe = regexp.MustCompile(`\bVFR\b`)
)

// TrafficTypes scans an AD 2.2 span for the permitted traffic tokens.
// When both appear the output preserves the order of first appearance.
func TrafficTypes(section string) string {
	upper := strings.ToUpper(section)
	ifr := ifrRe.FindStringIndex(upper)
	vfr := vfrRe.FindStringIndex(upper)

	switch {
	case ifr != nil && vfr != nil:
		if ifr[0] < vfr[0] {
			return "IFR/VFR"
		}

		return "VFR/IFR"
	case ifr != nil:
		return "IFR"
	case vfr != nil:
		return "VFR"
	}

	return "Not specified"
}

var fireCategoryRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)AD\s+CATEGORY[:\s]+([1-9])`),
	regexp.MustCompile(`(?i)\bCATEGORY[:\s]+([1-9])`),
	regexp.MustCompile(`(?i)\bCAT[:\s]+([1-9])\b`),
}

// FireFightingCategory extracts the rescue/fire-fighting category digit
// from an AD 2.6 span. When several categories are mentioned (seasonal or
// per-runway variants) the first one in document order wins.
func FireFightingCategory(section string) string {
	earliest := -1
	digit := ""

	for _, re := range fireCategoryRes {
		m := re.FindStringSubmatchIndex(section)
		if m == nil {
			continue
		}
		if earliest == -1 || m[0] < earliest {
			earliest = m[0]
			digit = section[m[2]:m[3]]
		}
	}

	if digit == "" {
		return "Not specified"
	}

	return digit
}

var (
	nameTailSectionRe = regexp.MustCompile(`(?i)\s*AD\s*2\.\d+.*$`)
	nameTailSuffixRe  = regexp.MustCompile(`(?i)\s*Aerodrome$`)
)

// AirportName extracts the display name from the AD 2.1 span, which reads
// "CODE — NAME" in Eurocontrol-style publications. Falls back to scanning
// the leading lines of the document, and finally to the bare code.
func AirportName(doc string, nameSpan Span, airportCode string) string {
	code := strings.ToUpper(strings.TrimSpace(airportCode))

	if section := nameSpan.Of(doc); section != "" {
		nameRe := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(code) + `\s*[—–-]\s*(.+)`)
		if m := nameRe.FindStringSubmatch(section); m != nil {
			name := spaceRunRe.ReplaceAllString(m[1], " ")
			// drop anything after a repeated code or a following heading
			if idx := strings.Index(strings.ToUpper(name), code); idx != -1 {
				name = name[:idx]
			}
			name = nameTailSectionRe.ReplaceAllString(name, "")
			name = nameTailSuffixRe.ReplaceAllString(name, "")
			name = strings.TrimSpace(strings.TrimRight(name, " /"))
			if name != "" {
				return code + " — " + name
			}
		}
	}

	// sparse documents: look for any early short line naming the airport
	lines := strings.Split(doc, "\n")
	seen := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > 50 {
			break
		}
		if len(line) <= 150 && strings.Contains(strings.ToUpper(line), code) &&
			strings.ContainsAny(line, "—–-") {
			return line
		}
	}

	return code
}
