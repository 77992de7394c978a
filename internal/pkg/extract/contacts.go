package extract

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/nordavia/airport-aip-service/internal/app/dto"
)

var (
	phoneRe = regexp.MustCompile(`\+?[0-9][0-9\s()./-]{5,18}[0-9]`)
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// table text glued to an email by the linearizer, e.g. "ops@lgs.lvAFS"
	emailGluedTailRe = regexp.MustCompile(`[A-Z]{2,}.*$`)
	nonDigitRe       = regexp.MustCompile(`[^0-9]`)
)

const (
	maxPhoneLen    = 20
	minPhoneDigits = 7

	// how far back a role label may sit and still own a contact item
	roleLookback = 200
	// an email this close after a phone joins the same contact
	contactPairGap = 80
)

// contactItem is one discovered phone or email, ordered by position.
type contactItem struct {
	pos   int
	phone string
	email string
}

// ExtractContacts scans the contacts-bearing region of the partition for
// phone numbers and email addresses, associates each with the nearest
// preceding role label, and deduplicates identical values keeping the
// first-seen role. No anchor in the text means no contacts, never an error.
func ExtractContacts(partition string, d Dialect) []dto.Contact {
	region := contactRegion(partition, d)
	if region == "" {
		return []dto.Contact{}
	}

	items := collectContactItems(region, d)

	contacts := []dto.Contact{}
	seen := map[string]bool{}
	roleCounts := map[string]int{}
	lastPos := -1

	for _, item := range items {
		value := item.phone + item.email
		if seen[value] {
			continue
		}
		seen[value] = true

		role := nearestRole(region, item.pos, d)

		// an email right after a phone under the same role completes
		// that contact instead of opening a new one
		if item.email != "" && len(contacts) > 0 && lastPos != -1 && item.pos-lastPos < contactPairGap {
			last := &contacts[len(contacts)-1]
			if last.Email == "" && last.Phone != "" && strings.HasPrefix(last.Type, roleOrDefault(role)) {
				last.Email = item.email
				lastPos = item.pos
				continue
			}
		}

		label := roleOrDefault(role)
		roleCounts[label]++
		lastPos = item.pos

		contacts = append(contacts, dto.Contact{
			Type:  fmt.Sprintf("%s %d", label, roleCounts[label]),
			Phone: item.phone,
			Email: item.email,
		})
	}

	return contacts
}

func roleOrDefault(role string) string {
	if role == "" {
		return "Contact"
	}

	return role + " Contact"
}

// contactRegion bounds the scan to the span between the first contact
// anchor and the first ender after it.
func contactRegion(partition string, d Dialect) string {
	upper := strings.ToUpper(partition)

	start := -1
	for _, anchor := range d.ContactAnchors {
		if idx := strings.Index(upper, strings.ToUpper(anchor)); idx != -1 {
			start = idx
			break
		}
	}
	if start == -1 {
		return ""
	}

	end := len(partition)
	for _, ender := range d.ContactEnders {
		if idx := strings.Index(upper[start:], strings.ToUpper(ender)); idx > 0 {
			end = start + idx
			break
		}
	}
	if end > start+geoSpanFallback {
		end = start + geoSpanFallback
	}

	return partition[start:end]
}

func collectContactItems(region string, d Dialect) []contactItem {
	var items []contactItem

	for _, loc := range phoneRe.FindAllStringIndex(region, -1) {
		phone := normalizePhone(region[loc[0]:loc[1]])
		if phone == "" {
			continue
		}
		if d.PhonePrefix != "" && !strings.HasPrefix(phone, d.PhonePrefix) && !strings.HasPrefix(phone, "+") {
			continue
		}
		items = append(items, contactItem{pos: loc[0], phone: phone})
	}

	for _, loc := range emailRe.FindAllStringIndex(region, -1) {
		email := emailGluedTailRe.ReplaceAllString(region[loc[0]:loc[1]], "")
		if !strings.Contains(email, "@") {
			continue
		}
		items = append(items, contactItem{pos: loc[0], email: email})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].pos < items[j].pos })

	return items
}

func normalizePhone(raw string) string {
	phone := spaceRunRe.ReplaceAllString(strings.TrimSpace(raw), " ")
	phone = strings.Trim(phone, " -./()")

	if len(phone) > maxPhoneLen {
		return ""
	}
	if len(nonDigitRe.ReplaceAllString(phone, "")) < minPhoneDigits {
		return ""
	}

	return phone
}

// nearestRole finds the closest role label preceding pos without crossing
// a blank line, so labels do not leak across table rows.
func nearestRole(region string, pos int, d Dialect) string {
	start := pos - roleLookback
	if start < 0 {
		start = 0
	}

	window := region[start:pos]
	if idx := strings.LastIndex(window, "\n\n"); idx != -1 {
		window = window[idx:]
	}
	upperWindow := strings.ToUpper(window)

	best := -1
	role := ""
	for _, candidate := range d.RoleLabels {
		if idx := strings.LastIndex(upperWindow, strings.ToUpper(candidate)); idx > best {
			best = idx
			role = candidate
		}
	}

	return role
}
