package parser

// Merchant candidate lines must be long enough to be a name and short
// enough to not be a wrapped address.
const (
	merchantTopLines  = 8
	merchantMinLength = 3
	merchantMaxLength = 50
)

// ExtractMerchant infers the store name from the top of the receipt, where
// merchant identity is always printed. Address, registration-number and
// document-label lines are filtered out, as are lines carrying amounts,
// dates or total keywords; among the survivors the longest line wins, the
// heuristic being that the full store name is the most content-bearing short
// line near the top. Returns nil only when the input has no non-empty lines.
func (p *Parser) ExtractMerchant(text string) *string {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil
	}
	top := lines
	if len(top) > merchantTopLines {
		top = top[:merchantTopLines]
	}

	var best string
	for _, line := range top {
		if p.skipMerchantLine(line) {
			continue
		}
		if len(line) < merchantMinLength || len(line) > merchantMaxLength {
			continue
		}
		if len(line) > len(best) {
			best = line
		}
	}
	if best == "" {
		best = top[0]
	}
	return &best
}

func (p *Parser) skipMerchantLine(line string) bool {
	if p.merchantSkip.MatchString(line) {
		return true
	}
	// totals, prices and dates near the top are metadata, never the name
	for _, kw := range p.keywords {
		if kw.re.MatchString(line) {
			return true
		}
	}
	if p.hasDateToken(line) {
		return true
	}
	return len(p.lineCandidates(line)) > 0
}
