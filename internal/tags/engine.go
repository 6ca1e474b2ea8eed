// Package tags derives a short, de-duplicated tag list from the fields of a
// resolved book record.
package tags

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lepinkainen/biblio/internal/textnorm"
)

// MaxTags caps the number of tags returned by Derive.
const MaxTags = 15

const (
	maxTitleTags  = 2
	minTitleToken = 5
	maxTitleToken = 20
)

// Input carries the record fields tags are derived from. Subjects and
// Category are expected to be translated already.
type Input struct {
	Title          string
	Category       string
	TargetAudience string
	Description    string
	Keywords       []string
	Subjects       []string
}

// Derive collects candidates from in and reduces them to at most MaxTags
// normalized tags.
func Derive(in Input) []string {
	return Reduce(Candidates(in))
}

// Candidates returns the raw, un-normalized tag candidates in collection
// order: keywords, subjects, category tokens, audience matches, title
// tokens, description vocabulary.
func Candidates(in Input) []string {
	var out []string
	out = append(out, in.Keywords...)
	out = append(out, in.Subjects...)
	out = append(out, splitCategory(in.Category)...)
	out = append(out, audienceTags(in.TargetAudience)...)
	out = append(out, titleTokens(in.Title)...)
	out = append(out, descriptionTags(in.Description)...)
	return out
}

// Reduce normalizes raw candidates, drops English and stop tags, and keeps
// the shortest representative of every group of related tags.
func Reduce(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	cleaned := make([]string, 0, len(raw))
	for _, r := range raw {
		tag := Normalize(r)
		if tag == "" || seen[tag] || isStopTag(tag) || isEnglish(tag) {
			continue
		}
		seen[tag] = true
		cleaned = append(cleaned, tag)
	}

	sort.SliceStable(cleaned, func(i, j int) bool {
		return utf8.RuneCountInString(cleaned[i]) < utf8.RuneCountInString(cleaned[j])
	})

	result := make([]string, 0, MaxTags)
	for _, tag := range cleaned {
		if len(result) == MaxTags {
			break
		}
		duplicate := false
		for _, kept := range result {
			if related(kept, tag) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			result = append(result, tag)
		}
	}
	return result
}

func splitCategory(category string) []string {
	category = strings.ReplaceAll(category, " - ", "/")
	return strings.FieldsFunc(category, func(r rune) bool {
		switch r {
		case '/', ',', ';', '&', '|', '>':
			return true
		}
		return false
	})
}

func audienceTags(audience string) []string {
	norm := textnorm.StripAccents(strings.ToLower(audience))
	if strings.TrimSpace(norm) == "" {
		return nil
	}
	var out []string
	for _, a := range audienceTerms {
		if strings.Contains(norm, a.match) {
			out = append(out, a.tag)
		}
	}
	return out
}

func titleTokens(title string) []string {
	var out []string
	for _, w := range strings.FieldsFunc(strings.ToLower(title), isNotLetter) {
		n := utf8.RuneCountInString(w)
		if n < minTitleToken || n > maxTitleToken || titleStopWords[textnorm.StripAccents(w)] {
			continue
		}
		out = append(out, w)
		if len(out) == maxTitleTags {
			break
		}
	}
	return out
}

func descriptionTags(description string) []string {
	if strings.TrimSpace(description) == "" {
		return nil
	}
	words := make(map[string]bool)
	for _, w := range strings.FieldsFunc(strings.ToLower(description), isNotLetter) {
		words[textnorm.StripAccents(Singularize(w))] = true
	}
	var out []string
	for _, term := range descriptionVocabulary {
		if words[term] {
			out = append(out, term)
		}
	}
	return out
}

func isNotLetter(r rune) bool {
	return !unicode.IsLetter(r)
}
