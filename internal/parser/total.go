package parser

import "github.com/strukscan/receipt-parser/internal/entity"

// SelectTotal picks the single best grand-total value, consulting three
// strategies in order: keyword-anchored lines, the largest amount outside
// item-list lines, then the largest amount anywhere. It also returns the
// ranked top-5 candidates it consulted, with keyword labels attached, for
// auditability. A nil total simply means no candidate survived.
func (p *Parser) SelectTotal(text string, pool []entity.NumericCandidate) (*float64, []entity.NumericCandidate) {
	lines := splitLines(text)
	ranked := rankByValue(p.labelCandidates(pool), 5)

	tiers := []func() *float64{
		func() *float64 { return p.keywordTotal(lines) },
		func() *float64 { return maxValue(p.dropItemLines(pool)) },
		func() *float64 { return maxValue(pool) },
	}
	for _, tier := range tiers {
		if v := tier(); v != nil {
			return v, ranked
		}
	}
	return nil, ranked
}

// keywordTotal returns the largest amount on the first line, top to bottom,
// carrying any total keyword. Keyword priority only decides which keyword
// claims a line (the compound "grand total" before the bare "total"), never
// which line wins: receipts label the total once, and the earliest labeled
// line is it.
func (p *Parser) keywordTotal(lines []string) *float64 {
	for _, line := range lines {
		if p.matchKeyword(line) == "" {
			continue
		}
		if v := maxValue(p.lineCandidates(line)); v != nil {
			return v
		}
	}
	return nil
}

// matchKeyword returns the first total keyword, in priority order, found in
// the line, or "" when none match.
func (p *Parser) matchKeyword(line string) string {
	for _, kw := range p.keywords {
		if kw.re.MatchString(line) {
			return kw.label
		}
	}
	return ""
}

// dropItemLines filters out candidates whose source line carries an
// item-list signal (a quantity multiplier or a qty/pcs/kg marker). Line
// items are individually smaller than the sum, so they only mislead the
// largest-amount fallback.
func (p *Parser) dropItemLines(pool []entity.NumericCandidate) []entity.NumericCandidate {
	kept := make([]entity.NumericCandidate, 0, len(pool))
	for _, c := range pool {
		if p.itemLine.MatchString(c.SourceLine) {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// labelCandidates annotates each candidate with the first total keyword its
// source line matches, if any.
func (p *Parser) labelCandidates(pool []entity.NumericCandidate) []entity.NumericCandidate {
	labeled := make([]entity.NumericCandidate, len(pool))
	copy(labeled, pool)
	for i := range labeled {
		labeled[i].Label = p.matchKeyword(labeled[i].SourceLine)
	}
	return labeled
}

func maxValue(pool []entity.NumericCandidate) *float64 {
	if len(pool) == 0 {
		return nil
	}
	best := pool[0].Value
	for _, c := range pool[1:] {
		if c.Value > best {
			best = c.Value
		}
	}
	return &best
}
