// Package sentiment implements the lexicon-based scorer.
//
// A message's score is the sum of per-word polarities divided by the token
// count (the "comparative" score), so message length does not bias the
// magnitude. The lexicon is pluggable; the default is an AFINN-style table
// embedded at build time.
package sentiment
