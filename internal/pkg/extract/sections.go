package extract

import (
	"regexp"
	"strings"
)

// Span is a half-open character range into the source document.
type Span struct {
	Start int
	End   int
}

func (s Span) Found() bool {
	return s.End > s.Start
}

// Of returns the text the span covers.
func (s Span) Of(doc string) string {
	if !s.Found() || s.Start < 0 || s.End > len(doc) {
		return ""
	}

	return doc[s.Start:s.End]
}

// Sections holds the located subsection spans for one airport.
type Sections struct {
	Partition Span // the airport's own slice of a multi-airport document
	Name      Span // AD 2.1 aerodrome location indicator and name
	Geo       Span // AD 2.2 geographical and administrative data
	Hours     Span // AD 2.3 operational hours
	Fire      Span // AD 2.6 rescue and fire fighting
}

// airport partition anchor: a 4-letter code followed by an AD 2.x heading
var partitionAnchorRe = regexp.MustCompile(`\b([A-Z]{4})\s+AD\s*2\.\d`)

const (
	nameSpanFallback = 600
	geoSpanFallback  = 2000
	fireSpanFallback = 2000
)

// LocateSections partitions the document by airport and finds the AD 2.1,
// 2.2, 2.3 and 2.6 spans within that partition. A missing partition yields
// zero spans; callers default every field in that case.
func LocateSections(doc, airportCode string, d Dialect) Sections {
	code := strings.ToUpper(strings.TrimSpace(airportCode))
	upper := strings.ToUpper(doc)

	partition := locatePartition(upper, code)
	if !partition.Found() {
		return Sections{}
	}

	sections := Sections{Partition: partition}
	sections.Name = locateSpan(upper, partition, d.NameHeadings, d.GeoHeadings, nameSpanFallback)
	sections.Geo = locateSpan(upper, partition, d.GeoHeadings, d.HoursHeadings, geoSpanFallback)
	sections.Hours = locateSpan(upper, partition, d.HoursHeadings, d.HoursEndHeadings, 0)
	sections.Fire = locateSpan(upper, partition, d.FireHeadings, d.FireEndHeadings, fireSpanFallback)

	return sections
}

// locatePartition finds the slice of the document belonging to one airport.
// Documents covering several airports repeat "<CODE> AD 2.x" anchors; the
// partition runs from the first anchor carrying our code to the first anchor
// carrying a different one. Sparse documents that mention the code without
// any anchor are treated as a single-airport document.
func locatePartition(upper, code string) Span {
	anchors := partitionAnchorRe.FindAllStringSubmatchIndex(upper, -1)

	start := -1
	for _, anchor := range anchors {
		anchorCode := upper[anchor[2]:anchor[3]]
		if start == -1 {
			if anchorCode == code {
				start = anchor[0]
			}
			continue
		}
		if anchorCode != code {
			return Span{Start: start, End: anchor[0]}
		}
	}

	if start != -1 {
		return Span{Start: start, End: len(upper)}
	}

	if code != "" && strings.Contains(upper, code) {
		return Span{Start: 0, End: len(upper)}
	}

	return Span{}
}

// locateSpan finds a subsection inside the partition. Start aliases are
// tried in priority order; the span ends at the first end alias after the
// start, or at the fallback length, or at the end of the partition.
func locateSpan(upper string, partition Span, startAliases, endAliases []string, fallbackLen int) Span {
	region := upper[partition.Start:partition.End]

	start := -1
	for _, alias := range startAliases {
		if idx := strings.Index(region, strings.ToUpper(alias)); idx != -1 {
			start = idx
			break
		}
	}
	if start == -1 {
		return Span{}
	}

	end := -1
	for _, alias := range endAliases {
		if idx := strings.Index(region[start:], strings.ToUpper(alias)); idx > 0 {
			end = start + idx
			break
		}
	}
	if end == -1 {
		end = len(region)
		if fallbackLen > 0 && start+fallbackLen < end {
			end = start + fallbackLen
		}
	}

	return Span{Start: partition.Start + start, End: partition.Start + end}
}
