package parser

import "time"

// Locale fixes the regional conventions the extractors are tuned to: the
// separator usage in amounts, the month-name vocabulary, and the keyword sets
// the heuristics anchor on. The pipeline skeleton itself is locale-agnostic;
// retargeting to another region means supplying a different Locale, not
// touching control flow.
type Locale struct {
	// CurrencyMarkers are prefixes stripped from monetary tokens ("rp").
	CurrencyMarkers []string
	// UnitSuffixes mark a numeric token as a quantity rather than a price
	// when they immediately follow it ("2 kg", "250ml").
	UnitSuffixes []string
	// MonthNames maps lowercase month abbreviations to calendar months.
	MonthNames map[string]time.Month
	// TotalKeywords anchor the line carrying the grand total, in priority
	// order. Compound keywords come before the bare words they contain.
	TotalKeywords []string
	// ItemLineWords mark line-item rows, excluded from the total fallback.
	ItemLineWords []string
	// MerchantSkipWords mark address, registration-number and document-label
	// lines that can never be the store name.
	MerchantSkipWords []string
}

// DefaultLocale returns the Indonesian receipt convention: `.` as thousands
// separator, `,` as decimal separator, Indonesian plus English month
// abbreviations, and Indonesian total/address vocabulary.
func DefaultLocale() Locale {
	return Locale{
		CurrencyMarkers: []string{"rp"},
		UnitSuffixes:    []string{"kg", "pcs", "box", "ltr", "ml", "gr", "g", "x"},
		MonthNames: map[string]time.Month{
			"jan": time.January,
			"feb": time.February,
			"mar": time.March,
			"apr": time.April,
			"mei": time.May,
			"may": time.May,
			"jun": time.June,
			"jul": time.July,
			"agu": time.August,
			"aug": time.August,
			"sep": time.September,
			"okt": time.October,
			"oct": time.October,
			"nov": time.November,
			"des": time.December,
			"dec": time.December,
		},
		TotalKeywords: []string{
			"grand total",
			"total belanja",
			"total",
			"jumlah",
			"jumlah bayar",
			"total bayar",
			"tagihan",
			"bayar",
		},
		ItemLineWords:     []string{"qty", "pcs", "kg"},
		MerchantSkipWords: []string{"jl", "jalan", "rt", "rw", "kec", "kel", "kota", "kab", "npwp", "struk", "invoice", "receipt"},
	}
}
