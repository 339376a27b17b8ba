package parser

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/strukscan/receipt-parser/internal/entity"
)

// ExtractNumericCandidates scans the transcript line by line for
// monetary-looking tokens. Tokens trailed by a unit suffix are quantities,
// not prices, and are skipped; tokens that do not parse to a finite positive
// number are dropped silently, since receipts are noisy by nature.
func (p *Parser) ExtractNumericCandidates(text string) []entity.NumericCandidate {
	var out []entity.NumericCandidate
	for _, line := range splitLines(text) {
		out = append(out, p.lineCandidates(line)...)
	}
	return out
}

// lineCandidates extracts the monetary tokens of a single line, in order of
// appearance.
func (p *Parser) lineCandidates(line string) []entity.NumericCandidate {
	var out []entity.NumericCandidate
	for _, m := range p.money.FindAllStringIndex(line, -1) {
		raw := line[m[0]:m[1]]
		if p.hasUnitSuffix(line, m[1]) {
			continue
		}
		v, ok := p.parseAmount(raw)
		if !ok {
			continue
		}
		out = append(out, entity.NumericCandidate{
			RawToken:   strings.TrimSpace(raw),
			Value:      v,
			SourceLine: line,
		})
	}
	return out
}

// hasUnitSuffix reports whether the text right after a token (at most one
// space away) is a weight/volume/count abbreviation.
func (p *Parser) hasUnitSuffix(line string, end int) bool {
	rest := strings.ToLower(line[end:])
	rest = strings.TrimPrefix(rest, " ")
	for _, unit := range p.loc.UnitSuffixes {
		u := strings.ToLower(unit)
		if !strings.HasPrefix(rest, u) {
			continue
		}
		tail := rest[len(u):]
		if tail == "" || !unicode.IsLetter(rune(tail[0])) {
			return true
		}
	}
	return false
}

// parseAmount disambiguates separators under the locale convention
// (`.` thousands, `,` decimal):
//   - both present: strip `.`, convert `,` to the decimal point
//   - only `,` with exactly two trailing digits: `,` is the decimal point
//   - otherwise: both are grouping noise, strip them
func (p *Parser) parseAmount(raw string) (float64, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, marker := range p.loc.CurrencyMarkers {
		s = strings.ReplaceAll(s, strings.ToLower(marker), "")
	}
	s = strings.ReplaceAll(s, " ", "")

	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")
	switch {
	case hasDot && hasComma:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case hasComma && decimalComma(s):
		i := strings.LastIndex(s, ",")
		s = strings.ReplaceAll(s[:i], ",", "") + "." + s[i+1:]
	default:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", "")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

// decimalComma reports whether the token ends with a comma followed by
// exactly two digits.
func decimalComma(s string) bool {
	i := strings.LastIndex(s, ",")
	if i < 0 || len(s)-i-1 != 2 {
		return false
	}
	for _, r := range s[i+1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
