package entity

import (
	"time"

	"github.com/strukscan/receipt-parser/constants"
)

// NumericCandidate is one monetary-looking token found in the OCR text, with
// its disambiguated value and the full line it appeared on. Label carries the
// matched total keyword when the candidate sits on a keyword-anchored line.
type NumericCandidate struct {
	RawToken   string  `json:"raw_token"`
	Value      float64 `json:"value"`
	SourceLine string  `json:"source_line"`
	Label      string  `json:"label,omitempty"`
}

// DateCandidate is one date-shaped token that resolved to a real calendar
// date. Value is midnight UTC (DATE semantics, no time-of-day component).
type DateCandidate struct {
	RawToken string    `json:"raw_token"`
	Value    time.Time `json:"value"`
}

// ParseResult is the structured record inferred from one receipt transcript.
// Merchant, Total and Date are independently nullable; Category always holds
// a value. The candidate lists preserve the top-ranked inputs that fed the
// total and date selections so callers can audit a low-confidence parse.
type ParseResult struct {
	Merchant        *string                 `json:"merchant,omitempty"`
	Total           *float64                `json:"total,omitempty"`
	Date            *time.Time              `json:"date,omitempty"`
	Category        constants.Category      `json:"category"`
	Confidence      float32                 `json:"confidence"`
	Warnings        []constants.WarningCode `json:"warnings"`
	TotalCandidates []NumericCandidate      `json:"total_candidates,omitempty"`
	DateCandidates  []DateCandidate         `json:"date_candidates,omitempty"`
	NormalizedText  string                  `json:"normalized_text"`
}
