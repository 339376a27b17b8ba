package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/strukscan/receipt-parser/constants"
)

func TestScore(t *testing.T) {
	merchant := "TOKO"
	total := 45000.0
	date := time.Date(2025, time.December, 29, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		merchant     *string
		date         *time.Time
		total        *float64
		want         float32
		wantWarnings []constants.WarningCode
	}{
		{
			name:         "all fields present",
			merchant:     &merchant,
			date:         &date,
			total:        &total,
			want:         1.0,
			wantWarnings: []constants.WarningCode{},
		},
		{
			name:  "only total",
			total: &total,
			want:  0.5,
			wantWarnings: []constants.WarningCode{
				constants.WarnMerchantNotDetected,
				constants.WarnDateNotDetected,
			},
		},
		{
			name:     "total missing",
			merchant: &merchant,
			date:     &date,
			want:     0.5,
			wantWarnings: []constants.WarningCode{
				constants.WarnTotalNotDetected,
			},
		},
		{
			name: "nothing detected",
			want: 0.0,
			wantWarnings: []constants.WarningCode{
				constants.WarnMerchantNotDetected,
				constants.WarnDateNotDetected,
				constants.WarnTotalNotDetected,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, warnings := Score(tt.merchant, tt.date, tt.total)
			assert.Equal(t, tt.want, score)
			assert.Equal(t, tt.wantWarnings, warnings)
			assert.GreaterOrEqual(t, score, float32(0))
			assert.LessOrEqual(t, score, float32(1))
		})
	}
}
