package eaiphtml

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	blankRunRe   = regexp.MustCompile(`\n{3,}`)
	lineSpacesRe = regexp.MustCompile(`[ \t]+\n`)
)

// Linearize converts an eAIP airport page to the plain text the extractor
// works on. Line breaks and paragraph ends become newlines first so that
// table cells do not glue together when the tags are stripped.
func Linearize(htmlStr string) string {
	text := strings.ReplaceAll(htmlStr, "<br>", "\n")
	text = strings.ReplaceAll(text, "<br />", "\n")
	text = strings.ReplaceAll(text, "<br/>", "\n")
	text = strings.ReplaceAll(text, "</p>", "\n\n")
	text = strings.ReplaceAll(text, "</tr>", "\n")
	text = strings.ReplaceAll(text, "</td>", " ")
	text = strings.ReplaceAll(text, "</th>", " ")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return strings.TrimSpace(text)
	}

	doc.Find("script, style, noscript").Remove()

	plain := doc.Text()
	plain = strings.ReplaceAll(plain, "\r\n", "\n")
	plain = strings.ReplaceAll(plain, "\r", "\n")
	plain = lineSpacesRe.ReplaceAllString(plain, "\n")
	plain = blankRunRe.ReplaceAllString(plain, "\n\n")

	return strings.TrimSpace(plain)
}
