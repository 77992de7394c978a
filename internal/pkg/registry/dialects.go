package registry

import (
	"github.com/nordavia/airport-aip-service/internal/pkg/extract"
)

// builtinDialects returns the per-country extractor configurations. Most
// publications follow the Eurocontrol eAIP layout verbatim; the named
// variants only override what their publication actually does differently.
func builtinDialects() map[string]extract.Dialect {
	return map[string]extract.Dialect{
		"eurocontrol": extract.DefaultDialect(),
		"latvia":      latvianDialect(),
		"baltic-pdf":  balticPDFDialect(),
	}
}

func latvianDialect() extract.Dialect {
	d := extract.DefaultDialect()
	d.Name = "latvia"
	d.PhonePrefix = "+371"

	return d
}

// balticPDFDialect covers text extracted from PDF charts, where section
// headings survive but the AD 2.x numbering is often squashed into the
// surrounding words.
func balticPDFDialect() extract.Dialect {
	d := extract.DefaultDialect()
	d.Name = "baltic-pdf"
	d.PhonePrefix = "+370"
	d.HoursHeadings = append(d.HoursHeadings, "OPERATIONAL HOURS AND SERVICES")
	d.FireHeadings = append(d.FireHeadings, "RESCUE AND FIREFIGHTING")

	return d
}
