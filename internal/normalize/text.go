package normalize

import (
	"html"
	"regexp"
	"strings"
)

const (
	sharePrefix     = "Shared content: "
	emptyTextMarker = "[no text]"
)

var (
	reLineBreak       = regexp.MustCompile(`(?i)<br\s*/?>`)
	reTag             = regexp.MustCompile(`<[^>]+>`)
	reManyBlankLines  = regexp.MustCompile(`\n{3,}`)
	rePunctuationOnly = regexp.MustCompile(`^[\p{P}\p{S}\s]*$`)
)

// CleanText strips markup, unescapes entities and normalizes line breaks.
func CleanText(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = reLineBreak.ReplaceAllString(text, "\n")
	text = reTag.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	text = strings.ReplaceAll(text, "\u00a0", " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	text = strings.Join(lines, "\n")
	text = reManyBlankLines.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// IsPunctuationOnly reports whether text carries no words.
func IsPunctuationOnly(text string) bool {
	return rePunctuationOnly.MatchString(text)
}

// ComposeShare builds the text of a repost from the sharer's comment and the
// original item's text.
func ComposeShare(comment, original string) string {
	if IsPunctuationOnly(comment) {
		return sharePrefix + original
	}
	return comment + "\n\n" + sharePrefix + original
}
