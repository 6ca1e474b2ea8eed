package tags

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lepinkainen/biblio/internal/textnorm"
)

// Normalize turns a raw tag candidate into its comparable form: lowercase,
// filler words removed, each word singularized, accents stripped. It
// returns "" when nothing is left.
func Normalize(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return ""
	}

	words := strings.FieldsFunc(raw, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '_' || r == '.' || r == '"' || r == '\''
	})

	out := make([]string, 0, len(words))
	for _, w := range words {
		if fillerTerms[textnorm.StripAccents(w)] {
			continue
		}
		w = textnorm.StripAccents(Singularize(w))
		if w == "" || fillerTerms[w] {
			continue
		}
		out = append(out, w)
	}

	for len(out) > 0 && connectors[out[0]] {
		out = out[1:]
	}
	for len(out) > 0 && connectors[out[len(out)-1]] {
		out = out[:len(out)-1]
	}
	return strings.Join(out, " ")
}

// Singularize applies Portuguese plural heuristics to a single lowercase
// word. Words of three letters or fewer are returned unchanged.
func Singularize(w string) string {
	if utf8.RuneCountInString(w) <= 3 {
		return w
	}
	switch {
	case strings.HasSuffix(w, "ões"), strings.HasSuffix(w, "ães"):
		return strings.TrimSuffix(strings.TrimSuffix(w, "ões"), "ães") + "ão"
	case strings.HasSuffix(w, "oes"), strings.HasSuffix(w, "aes"):
		return w[:len(w)-3] + "ao"
	case strings.HasSuffix(w, "ais"), strings.HasSuffix(w, "eis"),
		strings.HasSuffix(w, "ois"), strings.HasSuffix(w, "uis"):
		return w[:len(w)-2] + "l"
	case strings.HasSuffix(w, "res"), strings.HasSuffix(w, "ses"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "ns"):
		return w[:len(w)-2] + "m"
	case strings.HasSuffix(w, "ss"):
		return w
	case strings.HasSuffix(w, "s"):
		return w[:len(w)-1]
	}
	return w
}

// stem strips the first matching suffix while leaving at least four
// letters behind.
func stem(tag string) string {
	for _, suffix := range stemSuffixes {
		if strings.HasSuffix(tag, suffix) && len(tag)-len(suffix) >= 4 {
			return tag[:len(tag)-len(suffix)]
		}
	}
	return tag
}

// isStopTag reports whether a normalized tag carries no information.
func isStopTag(tag string) bool {
	return stopTags[tag] || len(tag) < 3
}

// isEnglish reports whether a normalized tag is English. Terms that are
// also Portuguese vocabulary ("humor", "horror") are kept.
func isEnglish(tag string) bool {
	if _, ok := groupOf[tag]; ok {
		return false
	}
	return textnorm.LooksEnglish(tag)
}

// related reports whether two normalized tags describe the same thing.
func related(a, b string) bool {
	if a == b {
		return true
	}
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) >= 4 && strings.Contains(longer, shorter) {
		return true
	}
	if stem(a) == stem(b) {
		return true
	}
	ga, okA := groupOf[a]
	gb, okB := groupOf[b]
	return okA && okB && ga == gb
}
