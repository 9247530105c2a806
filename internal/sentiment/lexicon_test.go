package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLexicon_Loads(t *testing.T) {
	lex := DefaultLexicon()
	require.NotEmpty(t, lex)

	tests := []struct {
		word     string
		polarity int
	}{
		{"love", 3},
		{"awesome", 4},
		{"hate", -3},
		{"terrible", -3},
		{"worst", -3},
	}

	for _, tt := range tests {
		got, ok := lex.Polarity(tt.word)
		require.True(t, ok, "word %q missing", tt.word)
		assert.Equal(t, tt.polarity, got)
	}

	_, ok := lex.Polarity("frobnicate")
	assert.False(t, ok)
}

func TestParseLexicon(t *testing.T) {
	table, err := ParseLexicon("# comment\nhappy\t3\n\nSAD\t-2\n")
	require.NoError(t, err)
	assert.Len(t, table, 2)

	got, ok := table.Polarity("happy")
	require.True(t, ok)
	assert.Equal(t, 3, got)

	// Keys are normalized to lowercase.
	got, ok = table.Polarity("sad")
	require.True(t, ok)
	assert.Equal(t, -2, got)
}

func TestParseLexicon_Malformed(t *testing.T) {
	_, err := ParseLexicon("happy 3")
	assert.Error(t, err)

	_, err = ParseLexicon("happy\tthree")
	assert.Error(t, err)
}
