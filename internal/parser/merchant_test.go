package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMerchant(t *testing.T) {
	p := Default()

	tests := []struct {
		name string
		text string
		want string // "" means nil expected
	}{
		{
			name: "address lines excluded",
			text: "INDOMARET\nJl. Sudirman No. 5\nKota Jakarta",
			want: "INDOMARET",
		},
		{
			name: "longest surviving line wins",
			text: "CV\nWARUNG MAKMUR JAYA\nKasir 01",
			want: "WARUNG MAKMUR JAYA",
		},
		{
			name: "document labels excluded",
			text: "Struk Pembelian\nTOKO ABADI\nNPWP 01.234.567.8",
			want: "TOKO ABADI",
		},
		{
			name: "totals and dates near the top are not names",
			text: "29/12/2025\nTotal: Rp 45.000\nTOKO SEJAHTERA",
			want: "TOKO SEJAHTERA",
		},
		{
			name: "falls back to first non-empty line",
			text: "AB\nJl. Mawar 1",
			want: "AB",
		},
		{
			name: "only the leading lines are considered",
			text: "X\nX\nX\nX\nX\nX\nX\nX\nTOKO DI BARIS SEMBILAN",
			want: "X",
		},
		{
			name: "empty input",
			text: "",
			want: "",
		},
		{
			name: "whitespace only",
			text: "  \n \t \n",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.ExtractMerchant(Normalize(tt.text))
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestExtractMerchantLengthGate(t *testing.T) {
	p := Default()

	long := strings.Repeat("A", 51)
	got := p.ExtractMerchant(long + "\nTOKO B")
	require.NotNil(t, got)
	assert.Equal(t, "TOKO B", *got)
}
