package textnorm

import (
	"regexp"
	"strings"
)

const (
	minEnglishLength  = 20
	minEnglishMatches = 5
)

// englishPatterns match English function words that have no Portuguese
// homograph ("a", "do", "no" and "for" are left out on purpose).
var englishPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bthe\b`),
	regexp.MustCompile(`(?i)\band\b`),
	regexp.MustCompile(`(?i)\bof\b`),
	regexp.MustCompile(`(?i)\bto\b`),
	regexp.MustCompile(`(?i)\bin\b`),
	regexp.MustCompile(`(?i)\bis\b`),
	regexp.MustCompile(`(?i)\bwas\b`),
	regexp.MustCompile(`(?i)\bwith\b`),
	regexp.MustCompile(`(?i)\bthat\b`),
	regexp.MustCompile(`(?i)\bthis\b`),
	regexp.MustCompile(`(?i)\bfrom\b`),
	regexp.MustCompile(`(?i)\bhis\b`),
	regexp.MustCompile(`(?i)\bher\b`),
	regexp.MustCompile(`(?i)\bwho\b`),
	regexp.MustCompile(`(?i)\bwhich\b`),
	regexp.MustCompile(`(?i)\btheir\b`),
	regexp.MustCompile(`(?i)\bhas\b`),
	regexp.MustCompile(`(?i)\bhave\b`),
}

// englishWords are single English terms that show up in subject headings.
var englishWords = map[string]bool{
	"fiction": true, "nonfiction": true, "juvenile": true, "stories": true,
	"story": true, "general": true, "literature": true, "literary": true,
	"novel": true, "novels": true, "young": true, "adult": true, "adults": true,
	"children": true, "childrens": true, "kids": true, "life": true,
	"love": true, "family": true, "friendship": true, "school": true,
	"history": true, "biography": true, "adventure": true, "mystery": true,
	"fantasy": true, "horror": true, "humor": true, "science": true,
	"books": true, "book": true, "reading": true, "readers": true,
	"and": true, "the": true, "of": true, "in": true, "with": true,
	"social": true, "themes": true, "issues": true, "classics": true,
	"contemporary": true, "thriller": true, "thrillers": true, "women": true,
	"girls": true, "boys": true, "men": true, "diary": true, "diaries": true,
	"growing": true, "up": true, "coming": true, "age": true,
	"english": true, "american": true, "translations": true, "into": true,
	"portuguese": true, "language": true, "materials": true,
}

// IsLikelyEnglish reports whether text reads as English prose. Short strings
// are never classified.
func IsLikelyEnglish(text string) bool {
	if len(text) < minEnglishLength {
		return false
	}
	matches := 0
	for _, p := range englishPatterns {
		matches += len(p.FindAllStringIndex(text, -1))
		if matches >= minEnglishMatches {
			return true
		}
	}
	return false
}

// IsEnglishWord reports whether word is a known English subject term.
func IsEnglishWord(word string) bool {
	return englishWords[strings.ToLower(strings.TrimSpace(word))]
}

// LooksEnglish extends IsLikelyEnglish to short headings: a string of at
// most a few words qualifies when every word is a known English term.
func LooksEnglish(text string) bool {
	if IsLikelyEnglish(text) {
		return true
	}
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return r == ' ' || r == ',' || r == '/' || r == '&' || r == '-' || r == '(' || r == ')'
	})
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !englishWords[w] {
			return false
		}
	}
	return true
}
