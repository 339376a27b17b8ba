package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	p := Default()

	tests := []struct {
		name  string
		token string
		want  float64
		ok    bool
	}{
		{name: "dot thousands", token: "12.500", want: 12500, ok: true},
		{name: "dot thousands with comma decimal", token: "12.500,50", want: 12500.5, ok: true},
		{name: "comma with two trailing digits is decimal", token: "12,50", want: 12.5, ok: true},
		{name: "comma with three trailing digits is grouping", token: "12,500", want: 12500, ok: true},
		{name: "currency prefix stripped", token: "Rp 45.000", want: 45000, ok: true},
		{name: "bare digit run", token: "15000", want: 15000, ok: true},
		{name: "zero dropped", token: "000", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.parseAmount(tt.token)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExtractNumericCandidates(t *testing.T) {
	p := Default()

	t.Run("unit suffixes excluded", func(t *testing.T) {
		cands := p.ExtractNumericCandidates("Air mineral 250ml\nBeras 500 gr\nTotal 15000")
		require.Len(t, cands, 1)
		assert.Equal(t, 15000.0, cands[0].Value)
		assert.Equal(t, "Total 15000", cands[0].SourceLine)
	})

	t.Run("discovery order preserved", func(t *testing.T) {
		cands := p.ExtractNumericCandidates("Susu 15.000\nRoti 8.500\nTotal 23.500")
		require.Len(t, cands, 3)
		assert.Equal(t, []float64{15000, 8500, 23500}, []float64{cands[0].Value, cands[1].Value, cands[2].Value})
	})

	t.Run("source line kept as heuristic context", func(t *testing.T) {
		cands := p.ExtractNumericCandidates("Susu x2 15000")
		require.Len(t, cands, 1)
		assert.Equal(t, "Susu x2 15000", cands[0].SourceLine)
		assert.Equal(t, "15000", cands[0].RawToken)
	})

	t.Run("noise yields nothing", func(t *testing.T) {
		assert.Empty(t, p.ExtractNumericCandidates("garbled ##@@ text"))
		assert.Empty(t, p.ExtractNumericCandidates(""))
	})
}
