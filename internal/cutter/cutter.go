// Package cutter computes Cutter-Sanborn style shelf codes from an author
// surname and a title.
package cutter

import (
	"strconv"
	"strings"

	"github.com/lepinkainen/biblio/internal/textnorm"
)

// DefaultCode is used when no table entry precedes the surname.
const DefaultCode = 100

type entry struct {
	prefix string
	code   int
}

var generationalSuffixes = map[string]bool{
	"JR": true, "JUNIOR": true, "FILHO": true, "NETO": true,
	"SOBRINHO": true, "II": true, "III": true, "IV": true,
}

var leadingArticles = map[string]bool{
	"o": true, "a": true, "os": true, "as": true, "um": true, "uma": true,
	"the": true, "an": true,
}

// Classify returns the shelf code for a book, e.g. "K11m". Only the first
// of several ";"-separated authors is used. An author without a usable
// surname yields "".
func Classify(author, title string) string {
	name := Surname(author)
	if name == "" {
		return ""
	}
	return name[:1] + strconv.Itoa(Lookup(name)) + TitleInitial(title)
}

// Surname extracts the normalized (uppercase, A-Z only) surname of the
// first author.
func Surname(author string) string {
	author, _, _ = strings.Cut(author, ";")
	author = strings.TrimSpace(author)
	if author == "" {
		return ""
	}

	if before, _, ok := strings.Cut(author, ","); ok {
		return lettersOnly(before)
	}

	tokens := strings.Fields(author)
	last := len(tokens) - 1
	if last > 0 && generationalSuffixes[lettersOnly(tokens[last])] {
		last--
	}
	return lettersOnly(tokens[last])
}

// Lookup returns the numeric code for a normalized surname: the entry with
// the greatest prefix not exceeding it, or DefaultCode.
func Lookup(surname string) int {
	if surname == "" {
		return DefaultCode
	}
	entries, ok := table[surname[0]]
	if !ok {
		return DefaultCode
	}
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].prefix <= surname {
			return entries[i].code
		}
	}
	return DefaultCode
}

// TitleInitial returns the lowercase first letter of the title, skipping a
// leading article. It returns "" when the title has no letters.
func TitleInitial(title string) string {
	words := strings.Fields(strings.ToLower(textnorm.StripAccents(title)))
	if len(words) > 1 && leadingArticles[words[0]] {
		words = words[1:]
	}
	for _, w := range words {
		for _, r := range w {
			if r >= 'a' && r <= 'z' {
				return string(r)
			}
		}
	}
	return ""
}

func lettersOnly(s string) string {
	s = strings.ToUpper(textnorm.StripAccents(s))
	var b strings.Builder
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
