package constants

// WarningCode names a field the parser could not detect. Warnings are
// informational: a scan that produced warnings is still a successful scan.
type WarningCode string

// Stable values (callers branch on these exact strings).
const (
	WarnMerchantNotDetected WarningCode = "merchant_not_detected"
	WarnDateNotDetected     WarningCode = "date_not_detected"
	WarnTotalNotDetected    WarningCode = "total_not_detected"
)
