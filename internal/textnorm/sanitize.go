package textnorm

import (
	"html"
	"regexp"
	"strings"
)

// codePatterns recognize descriptions that are really leaked page scripts.
var codePatterns = []*regexp.Regexp{
	regexp.MustCompile(`function\s*\(`),
	regexp.MustCompile(`\bvar\s+\w+\s*=`),
	regexp.MustCompile(`\b(?:const|let)\s+\w+\s*=`),
	regexp.MustCompile(`\bdocument\.\w+`),
	regexp.MustCompile(`\bwindow\.\w+`),
	regexp.MustCompile(`=>`),
	regexp.MustCompile(`\bconsole\.\w+`),
	regexp.MustCompile(`\$\(\s*['"]`),
	regexp.MustCompile(`[;{]\s*\}`),
}

var (
	blockPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`),
		regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style\s*>`),
		regexp.MustCompile(`(?is)<iframe\b[^>]*>.*?</iframe\s*>`),
	}
	// unterminated or self-closed blocks run to the end of the text
	bareBlockPattern = regexp.MustCompile(`(?is)<(?:script|style|iframe)\b.*$`)
	strayCloser      = regexp.MustCompile(`(?i)</(?:script|style|iframe)\s*>`)
	lineBreakPattern = regexp.MustCompile(`(?i)<br\s*/?>`)
	tagPattern       = regexp.MustCompile(`<[^>]*>`)
	spacePattern     = regexp.MustCompile(`[ \t\f\v\r]+`)
	newlinePattern   = regexp.MustCompile(`\s*\n\s*`)
)

// LooksLikeCode reports whether at least two distinct code patterns match.
func LooksLikeCode(s string) bool {
	hits := 0
	for _, p := range codePatterns {
		if p.MatchString(s) {
			hits++
			if hits >= 2 {
				return true
			}
		}
	}
	return false
}

// SanitizeDescription cleans a provider description. Text that looks like
// embedded code is discarded entirely; otherwise script, style and iframe
// blocks, line breaks and markup are removed, entities are unescaped and
// whitespace is collapsed.
func SanitizeDescription(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	if LooksLikeCode(s) {
		return ""
	}

	for _, p := range blockPatterns {
		s = p.ReplaceAllString(s, " ")
	}
	s = bareBlockPattern.ReplaceAllString(s, " ")
	s = strayCloser.ReplaceAllString(s, " ")
	s = lineBreakPattern.ReplaceAllString(s, "\n")
	s = tagPattern.ReplaceAllString(s, "")
	s = html.UnescapeString(s)

	return CollapseWhitespace(s)
}

// CollapseWhitespace squeezes runs of blanks to one space and keeps at most
// single line breaks between lines.
func CollapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = spacePattern.ReplaceAllString(s, " ")
	s = newlinePattern.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
