package parser

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/strukscan/receipt-parser/internal/entity"
)

// dateFamily is one date-shaped pattern plus the rule that resolves its
// capture groups to a calendar date.
type dateFamily struct {
	re      *regexp.Regexp
	resolve func(m []string, months map[string]time.Month) (time.Time, bool)
}

// compileDateFamilies builds the three pattern families, in the fixed order
// they are consulted: numeric day-first, numeric year-first, then day with a
// spelled month abbreviation. Slash/dash-separated numeric dates dominate
// printed receipts, hence the ordering prior.
func compileDateFamilies(loc Locale) []dateFamily {
	months := make([]string, 0, len(loc.MonthNames))
	for name := range loc.MonthNames {
		months = append(months, regexp.QuoteMeta(name))
	}
	sort.Strings(months)

	return []dateFamily{
		{
			re: regexp.MustCompile(`\b(\d{2})[/\-.](\d{2})[/\-.](\d{4})\b`),
			resolve: func(m []string, _ map[string]time.Month) (time.Time, bool) {
				return calendarDate(m[3], m[2], m[1])
			},
		},
		{
			re: regexp.MustCompile(`\b(\d{4})[/\-.](\d{2})[/\-.](\d{2})\b`),
			resolve: func(m []string, _ map[string]time.Month) (time.Time, bool) {
				return calendarDate(m[1], m[2], m[3])
			},
		},
		{
			re: regexp.MustCompile(`(?i)\b(\d{1,2})\s?(` + strings.Join(months, "|") + `)\s?(\d{4})\b`),
			resolve: func(m []string, months map[string]time.Month) (time.Time, bool) {
				mon, ok := months[strings.ToLower(m[2])]
				if !ok {
					return time.Time{}, false
				}
				y, _ := strconv.Atoi(m[3])
				d, _ := strconv.Atoi(m[1])
				return resolveYMD(y, mon, d)
			},
		},
	}
}

// ExtractDate picks the transaction date: the first valid occurrence within
// the first pattern family that has any valid match. Receipts print the
// transaction date before other date-shaped content (expiry, loyalty), so
// the earliest occurrence wins within a family. Also returns the top-5
// candidates in discovery order.
func (p *Parser) ExtractDate(text string) (*time.Time, []entity.DateCandidate) {
	var cands []entity.DateCandidate
	for _, fam := range p.dateFamilies {
		for _, m := range fam.re.FindAllStringSubmatch(text, -1) {
			t, ok := fam.resolve(m, p.loc.MonthNames)
			if !ok {
				continue // not a real calendar date, discard
			}
			cands = append(cands, entity.DateCandidate{RawToken: m[0], Value: t})
		}
	}
	if len(cands) == 0 {
		return nil, nil
	}
	chosen := cands[0].Value
	if len(cands) > 5 {
		cands = cands[:5]
	}
	return &chosen, cands
}

// hasDateToken reports whether any date family matches the line.
func (p *Parser) hasDateToken(line string) bool {
	for _, fam := range p.dateFamilies {
		if fam.re.MatchString(line) {
			return true
		}
	}
	return false
}

func calendarDate(year, month, day string) (time.Time, bool) {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if m < 1 || m > 12 {
		return time.Time{}, false
	}
	return resolveYMD(y, time.Month(m), d)
}

// resolveYMD builds a midnight-UTC date and rejects values time.Date would
// silently normalize (Feb 30 rolling into March).
func resolveYMD(y int, m time.Month, d int) (time.Time, bool) {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || t.Month() != m || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}
