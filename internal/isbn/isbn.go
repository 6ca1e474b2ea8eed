// Package isbn canonicalizes ISBN input and converts between the 10- and
// 13-digit forms.
package isbn

import (
	"strings"
)

// domesticPrefixes identify identifiers issued by the Brazilian registry.
var domesticPrefixes = []string{"97885", "97865", "85", "65"}

// ISBN is a normalized identifier. Values are only produced by Parse, so
// code receiving an ISBN never sees raw user input.
type ISBN string

// Normalize keeps only digits and X from raw. Lowercase x is accepted.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.ToUpper(raw) {
		if (r >= '0' && r <= '9') || r == 'X' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Parse normalizes raw into an ISBN. The result may be empty or of an
// unexpected length; Valid reports whether it can be queried.
func Parse(raw string) ISBN {
	return ISBN(Normalize(raw))
}

// String returns the normalized identifier.
func (i ISBN) String() string {
	return string(i)
}

// Valid reports whether the identifier has the length of an ISBN-10 or ISBN-13.
func (i ISBN) Valid() bool {
	return len(i) == 10 || len(i) == 13
}

// IsDomestic reports whether the identifier belongs to the Brazilian registry.
func (i ISBN) IsDomestic() bool {
	s := string(i)
	for _, p := range domesticPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// Alternate returns the other form of the identifier. It returns false when
// the identifier is not 10 or 13 characters long or cannot be converted.
func (i ISBN) Alternate() (ISBN, bool) {
	switch len(i) {
	case 13:
		alt, ok := ToISBN10(string(i))
		return ISBN(alt), ok
	case 10:
		alt, ok := ToISBN13(string(i))
		return ISBN(alt), ok
	}
	return "", false
}

// ISBN13 returns the 13-digit form, converting when needed.
func (i ISBN) ISBN13() string {
	if len(i) == 13 {
		return string(i)
	}
	alt, _ := ToISBN13(string(i))
	return alt
}

// Matches reports whether other refers to the same identifier, in either
// form. Both sides are compared as ISBN-13, which is rebuilt from the first
// nine body digits, so an ISBN-10 echo matches whatever its check character.
func (i ISBN) Matches(other string) bool {
	o := ISBN(Normalize(other))
	if o == "" || i == "" {
		return false
	}
	if o == i {
		return true
	}
	a := i.ISBN13()
	return a != "" && a == o.ISBN13()
}

// ToISBN10 converts a 978-prefixed ISBN-13 to ISBN-10. The check character is
// the weighted sum of the nine body digits (weights 10 down to 2) modulo 11,
// with a remainder of 10 written as X.
func ToISBN10(isbn13 string) (string, bool) {
	s := Normalize(isbn13)
	if len(s) != 13 || !strings.HasPrefix(s, "978") {
		return "", false
	}
	body := s[3:12]
	sum := 0
	for idx, r := range body {
		if r < '0' || r > '9' {
			return "", false
		}
		sum += int(r-'0') * (10 - idx)
	}
	check := sum % 11
	if check == 10 {
		return body + "X", true
	}
	return body + string(rune('0'+check)), true
}

// ToISBN13 converts an ISBN-10 to ISBN-13 by prefixing 978 to the first nine
// digits and appending the modulo-10 check digit (weights alternating 1 and 3).
func ToISBN13(isbn10 string) (string, bool) {
	s := Normalize(isbn10)
	if len(s) != 10 {
		return "", false
	}
	body := "978" + s[:9]
	sum := 0
	for idx, r := range body {
		if r < '0' || r > '9' {
			return "", false
		}
		weight := 1
		if idx%2 == 1 {
			weight = 3
		}
		sum += int(r-'0') * weight
	}
	check := (10 - sum%10) % 10
	return body + string(rune('0'+check)), true
}
