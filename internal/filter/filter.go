// Package filter implements the message admission filter: the decision
// whether an incoming chat message carries enough signal to be worth scoring.
// Everything here is a pure function of its inputs.
package filter

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// minSignalLength is the minimum trimmed rune count a message must keep,
// both before and after noise stripping, to be admitted.
const minSignalLength = 5

var (
	mentionPattern = regexp.MustCompile(`<@!?\d+>`)
	emojiPattern   = regexp.MustCompile(`<:\w+:\d+>`)
	urlPattern     = regexp.MustCompile(`https?://\S+`)
)

// Admit applies the admission rules in order, short-circuiting on the first
// rejection:
//
//  1. bot authors are rejected (prevents feedback loops with bot output)
//  2. messages in ignored channels are rejected
//  3. messages under five runes after trimming are rejected
//  4. messages under five runes after stripping mentions, custom emoji
//     tokens, and URLs are rejected (catches messages that are only noise
//     tokens padded past rule 3)
//
// On admission it returns the stripped, trimmed text to score.
func Admit(rawText string, authorIsBot bool, channelID string, ignored map[string]struct{}) (string, bool) {
	if authorIsBot {
		return "", false
	}
	if _, ok := ignored[channelID]; ok {
		return "", false
	}

	text := strings.TrimSpace(rawText)
	if utf8.RuneCountInString(text) < minSignalLength {
		return "", false
	}

	stripped := strings.TrimSpace(Strip(text))
	if utf8.RuneCountInString(stripped) < minSignalLength {
		return "", false
	}

	return stripped, true
}

// Strip removes user mentions, custom emoji tokens, and URLs in independent
// passes. The patterns are disjoint, so pass order does not matter, and
// stripping already-stripped text is a no-op.
func Strip(text string) string {
	text = mentionPattern.ReplaceAllString(text, "")
	text = emojiPattern.ReplaceAllString(text, "")
	text = urlPattern.ReplaceAllString(text, "")
	return text
}

// IgnoreSet builds the channel ignore set from a configured ID list.
func IgnoreSet(channelIDs []string) map[string]struct{} {
	set := make(map[string]struct{}, len(channelIDs))
	for _, id := range channelIDs {
		id = strings.TrimSpace(id)
		if id != "" {
			set[id] = struct{}{}
		}
	}
	return set
}
