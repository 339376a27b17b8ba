package parser

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/strukscan/receipt-parser/internal/entity"
)

// Parser runs the heuristic field-extraction pipeline over one receipt
// transcript. It holds only vocabulary compiled from its Locale, so a single
// Parser is safe for concurrent use across goroutines; each Parse call is an
// independent pass over its own input.
type Parser struct {
	loc Locale

	money        *regexp.Regexp
	keywords     []keywordMatcher
	itemLine     *regexp.Regexp
	merchantSkip *regexp.Regexp
	dateFamilies []dateFamily
	rules        []categoryRule
}

type keywordMatcher struct {
	label string
	re    *regexp.Regexp
}

// New compiles the extraction vocabulary for the given locale.
func New(loc Locale) *Parser {
	p := &Parser{loc: loc, rules: defaultCategoryRules}

	// digit groups with `.`/`,` thousands separators and an optional 2-digit
	// fraction, or a bare run of 3+ digits
	moneyPat := `(?i)`
	if len(loc.CurrencyMarkers) > 0 {
		moneyPat += `(?:(?:` + quoteAlternation(loc.CurrencyMarkers) + `)\s*)?`
	}
	moneyPat += `(?:\d{1,3}(?:[.,]\d{3})+(?:[.,]\d{2})?|\d{3,})`
	p.money = regexp.MustCompile(moneyPat)

	p.keywords = make([]keywordMatcher, 0, len(loc.TotalKeywords))
	for _, kw := range loc.TotalKeywords {
		// word-bounded so "Subtotal" does not satisfy the "total" keyword
		p.keywords = append(p.keywords, keywordMatcher{
			label: kw,
			re:    regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`),
		})
	}

	itemWords := quoteAlternation(loc.ItemLineWords)
	p.itemLine = regexp.MustCompile(fmt.Sprintf(`(?i)\b(?:%s)\b|\bx\s?\d|\d\s?x\b`, itemWords))

	p.merchantSkip = regexp.MustCompile(`(?i)\b(?:` + quoteAlternation(loc.MerchantSkipWords) + `)\b`)

	p.dateFamilies = compileDateFamilies(loc)
	return p
}

// Default returns a Parser tuned to the Indonesian receipt convention.
func Default() *Parser {
	return New(DefaultLocale())
}

// Parse turns a raw OCR transcript into a structured transaction record.
// It never fails: noisy, empty or adversarial input degrades to nil fields
// plus warnings, and a low-confidence result is a valid return.
func (p *Parser) Parse(rawText string) *entity.ParseResult {
	text := Normalize(rawText)

	merchant := p.ExtractMerchant(text)
	pool := p.ExtractNumericCandidates(text)
	total, totalCands := p.SelectTotal(text, pool)
	date, dateCands := p.ExtractDate(text)
	category := p.InferCategory(text)
	confidence, warnings := Score(merchant, date, total)

	return &entity.ParseResult{
		Merchant:        merchant,
		Total:           total,
		Date:            date,
		Category:        category,
		Confidence:      confidence,
		Warnings:        warnings,
		TotalCandidates: totalCands,
		DateCandidates:  dateCands,
		NormalizedText:  text,
	}
}

func quoteAlternation(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(strings.ToLower(w))
	}
	return strings.Join(quoted, "|")
}

// rankByValue returns the top-n candidates by value descending, preserving
// discovery order among equal values.
func rankByValue(pool []entity.NumericCandidate, n int) []entity.NumericCandidate {
	ranked := make([]entity.NumericCandidate, len(pool))
	copy(ranked, pool)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Value > ranked[j].Value })
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
