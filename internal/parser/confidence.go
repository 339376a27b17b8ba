package parser

import (
	"math"
	"time"

	"github.com/strukscan/receipt-parser/constants"
)

// Field weights. Total carries half the score because it is the field
// consumers act on financially.
const (
	merchantWeight = 0.25
	dateWeight     = 0.25
	totalWeight    = 0.50
)

// Score folds field presence into a bounded [0,1] confidence, rounded to two
// decimals, plus one warning code per missing field in fixed order. Warnings
// are informational; an all-null parse scoring 0.0 is still a valid result.
func Score(merchant *string, date *time.Time, total *float64) (float32, []constants.WarningCode) {
	var score float64
	warnings := make([]constants.WarningCode, 0, 3)

	if merchant != nil {
		score += merchantWeight
	} else {
		warnings = append(warnings, constants.WarnMerchantNotDetected)
	}
	if date != nil {
		score += dateWeight
	} else {
		warnings = append(warnings, constants.WarnDateNotDetected)
	}
	if total != nil {
		score += totalWeight
	} else {
		warnings = append(warnings, constants.WarnTotalNotDetected)
	}

	return float32(math.Round(score*100) / 100), warnings
}
