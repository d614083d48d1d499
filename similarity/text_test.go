package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and splits on whitespace",
			text: "LGI1 Autoimmune Encephalitis",
			want: []string{"lgi1", "autoimmune", "encephalitis"},
		},
		{
			name: "splits on punctuation",
			text: "Anti-NMDAR",
			want: []string{"anti", "nmdar"},
		},
		{
			name: "keeps single-rune tokens",
			text: "P/Q type VGCC",
			want: []string{"p", "q", "type", "vgcc"},
		},
		{
			name: "unicode letters survive",
			text: "Neurexin-3α",
			want: []string{"neurexin", "3α"},
		},
		{
			name: "no tokens",
			text: "!!!",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, tokenize(tt.text))
		})
	}
}

func TestTokenizeLexical(t *testing.T) {
	t.Run("drops single-rune tokens", func(t *testing.T) {
		assert.Equal(t, []string{"type", "vgcc"}, tokenizeLexical("P/Q type VGCC"))
	})

	t.Run("keeps two-rune tokens", func(t *testing.T) {
		assert.Equal(t, []string{"d2", "receptor"}, tokenizeLexical("D2 receptor"))
	})
}
