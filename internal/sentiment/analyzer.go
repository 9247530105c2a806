package sentiment

import (
	"strings"
	"unicode"

	"github.com/Saturn217/Sentiment-Community-Bot/internal/domain"
)

// Analyzer scores cleaned message text against a lexicon. It holds no
// mutable state and is safe for concurrent use.
type Analyzer struct {
	lexicon Lexicon
}

func NewAnalyzer(lexicon Lexicon) *Analyzer {
	return &Analyzer{lexicon: lexicon}
}

// Score computes the comparative sentiment of a message: the polarity sum
// over all tokens divided by the token count. A message with no tokens
// scores zero. The label is always the threshold function of the score.
func (a *Analyzer) Score(text string) domain.Measurement {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return domain.Measurement{Score: 0, Label: domain.LabelNeutral}
	}

	sum := 0
	for _, token := range tokens {
		if polarity, ok := a.lexicon.Polarity(token); ok {
			sum += polarity
		}
	}

	score := float64(sum) / float64(len(tokens))
	return domain.Measurement{Score: score, Label: domain.LabelFor(score)}
}

// Tokenize lowercases the text and splits it into words. Apostrophes stay
// inside words ("don't" is one token); every other non-alphanumeric rune is
// a separator.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}
