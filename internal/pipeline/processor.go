package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/strukscan/receipt-parser/internal/parser"
)

// Config holds thresholds and behavior flags for the scan flow.
type Config struct {
	MinConfidence float32 // default 0.60
}

// Processor coordinates OCR, field extraction, and handoff to storage.
type Processor struct {
	Logger *slog.Logger
	Cfg    Config
	OCR    TextExtractor
	Parser *parser.Parser
	Store  ReceiptStore
}

func NewProcessor(logger *slog.Logger, cfg Config, ocr TextExtractor, p *parser.Parser, store ReceiptStore) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = 0.60
	}
	if p == nil {
		p = parser.Default()
	}
	return &Processor{Logger: logger, Cfg: cfg, OCR: ocr, Parser: p, Store: store}
}

// ProcessScan runs OCR on a stored receipt object, parses the transcript,
// and hands the record to the store. A transcript that yields no fields is
// still a successful scan: it is stored flagged for review rather than
// rejected, per the warnings-over-errors contract. Only collaborator
// failures surface as errors.
func (p *Processor) ProcessScan(ctx context.Context, userID, sourceKey string) (ScanRecord, error) {
	scanID := uuid.New()

	tr, err := p.OCR.Extract(ctx, sourceKey)
	if err != nil {
		p.Logger.Error("scan.ocr.failed", "scan_id", scanID, "source_key", sourceKey, "err", err)
		return ScanRecord{}, fmt.Errorf("extract text: %w", err)
	}
	p.Logger.Info("scan.ocr.ok",
		"scan_id", scanID, "source_key", sourceKey,
		"method", tr.Method, "lang", tr.Language, "ocr_bytes", len(tr.Text),
	)

	res := p.Parser.Parse(tr.Text)

	rec := ScanRecord{
		ScanID:      scanID,
		UserID:      userID,
		SourceKey:   sourceKey,
		Result:      res,
		NeedsReview: res.Total == nil || res.Confidence < p.Cfg.MinConfidence,
		ScannedAt:   time.Now().UTC(),
	}
	if err := p.Store.SaveScan(ctx, rec); err != nil {
		p.Logger.Error("scan.save.failed", "scan_id", scanID, "err", err)
		return ScanRecord{}, fmt.Errorf("save scan: %w", err)
	}

	p.Logger.Info("scan.parse.ok",
		"scan_id", scanID,
		"merchant", strOrEmpty(res.Merchant),
		"category", res.Category,
		"confidence", res.Confidence,
		"warnings", len(res.Warnings),
		"needs_review", rec.NeedsReview,
	)
	return rec, nil
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
