package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/strukscan/receipt-parser/internal/entity"
)

// TextExtractor is the OCR collaborator: stored receipt object -> transcript.
// Implementations return an empty or garbled transcript for an unreadable
// image rather than failing; garbling is expected input here.
type TextExtractor interface {
	Extract(ctx context.Context, sourceKey string) (Transcript, error)
}

// Transcript is the OCR output for one receipt object.
type Transcript struct {
	Text     string
	Method   string // "image-ocr" | "pdf-text" | ...
	Language string
	Duration time.Duration
}

// ScanRecord is what the persistence collaborator receives: the parse result
// plus the caller-supplied ownership metadata. Whether and when it reaches
// durable storage is the store's decision, not ours.
type ScanRecord struct {
	ScanID      uuid.UUID           `json:"scan_id"`
	UserID      string              `json:"user_id"`
	SourceKey   string              `json:"source_key"`
	Result      *entity.ParseResult `json:"result"`
	NeedsReview bool                `json:"needs_review"`
	ScannedAt   time.Time           `json:"scanned_at"`
}

// ReceiptStore is the persistence collaborator for finished scans.
type ReceiptStore interface {
	SaveScan(ctx context.Context, rec ScanRecord) error
}
