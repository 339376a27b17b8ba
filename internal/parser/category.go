package parser

import (
	"strings"

	"github.com/strukscan/receipt-parser/constants"
)

// categoryRule maps a set of brand/domain keywords to a spending category.
type categoryRule struct {
	category constants.Category
	keywords []string
}

// defaultCategoryRules is evaluated top-to-bottom, first match wins. The
// table is a deliberate stand-in for a learned classifier: the contract is
// only that classification is deterministic, total, and rule order is fixed.
var defaultCategoryRules = []categoryRule{
	{constants.Transportation, []string{"grab", "gojek", "uber", "ojek", "taksi", "parkir"}},
	{constants.FoodAndBeverage, []string{"starbucks", "kopi", "coffee", "cafe", "resto", "warung", "bakso"}},
	{constants.Shopping, []string{"tokopedia", "shopee", "lazada", "blibli", "bukalapak"}},
	{constants.Bills, []string{"pln", "listrik", "pdam", "pulsa", "telkom", "indihome", "internet"}},
	{constants.Health, []string{"apotek", "klinik", "obat", "kimia farma", "rumah sakit"}},
	{constants.DailyNecessities, []string{"indomaret", "alfamart", "supermarket", "minimarket"}},
}

// InferCategory maps keyword signals in the transcript to the spending
// taxonomy. Always returns a label; Uncategorized is the catch-all.
func (p *Parser) InferCategory(text string) constants.Category {
	lower := strings.ToLower(text)
	for _, rule := range p.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return constants.Uncategorized
}
