package sentiment

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Lexicon maps words to an integer polarity. Implementations must be safe
// for concurrent reads; the analyzer never writes.
type Lexicon interface {
	// Polarity returns the polarity of a lowercase word and whether the word
	// is known. Unknown words contribute zero to a message's score.
	Polarity(word string) (int, bool)
}

// TableLexicon is a plain in-memory word table.
type TableLexicon map[string]int

func (t TableLexicon) Polarity(word string) (int, bool) {
	v, ok := t[word]
	return v, ok
}

//go:embed afinn.txt
var afinnData string

var (
	defaultOnce    sync.Once
	defaultLexicon TableLexicon
)

// DefaultLexicon returns the embedded AFINN word table, parsed once.
// The data file holds one "word<TAB>polarity" pair per line; lines starting
// with '#' are comments.
func DefaultLexicon() TableLexicon {
	defaultOnce.Do(func() {
		table, err := ParseLexicon(afinnData)
		if err != nil {
			// The embedded table is validated by tests; a parse failure here
			// means a corrupted build.
			panic(err)
		}
		defaultLexicon = table
	})
	return defaultLexicon
}

// ParseLexicon parses lexicon data in the embedded file's format.
func ParseLexicon(data string) (TableLexicon, error) {
	table := make(TableLexicon)
	for i, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		word, value, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("lexicon line %d: missing tab separator", i+1)
		}

		polarity, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("lexicon line %d: bad polarity %q: %w", i+1, value, err)
		}
		table[strings.ToLower(strings.TrimSpace(word))] = polarity
	}
	return table, nil
}
