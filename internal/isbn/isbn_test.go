package isbn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "hyphens", in: "978-85-359-1484-9", want: "9788535914849"},
		{name: "spaces and prefix", in: "ISBN 85 359 1484 5", want: "8535914845"},
		{name: "lowercase x", in: "0-306-40615-x", want: "030640615X"},
		{name: "garbage", in: "abc", want: ""},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"978-85-359-1484-9", " isbn: 0-306-40615-x ", "x-X-1", "", "🙂97885"}
	for _, in := range inputs {
		once := Normalize(in)
		require.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestChecksumRoundTrip(t *testing.T) {
	isbn13, ok := ToISBN13("8535914845")
	require.True(t, ok)
	require.Equal(t, "9788535914849", isbn13)

	isbn10, ok := ToISBN10(isbn13)
	require.True(t, ok)
	require.Equal(t, "8535914845", isbn10)
}

func TestToISBN10RemainderTen(t *testing.T) {
	// body 000000005: 5*2 = 10, remainder 10
	got, ok := ToISBN10("9780000000050")
	require.True(t, ok)
	require.Equal(t, "000000005X", got)
}

func TestConversionSkippedForUnexpectedLengths(t *testing.T) {
	_, ok := ToISBN10("97885359148")
	require.False(t, ok)

	_, ok = ToISBN10("9798535914849")
	require.False(t, ok, "only 978 prefixes have an ISBN-10 form")

	_, ok = ToISBN13("85359148")
	require.False(t, ok)

	_, ok = Parse("12345").Alternate()
	require.False(t, ok)
}

func TestAlternate(t *testing.T) {
	alt, ok := Parse("978-85-359-1484-9").Alternate()
	require.True(t, ok)
	require.Equal(t, ISBN("8535914845"), alt)

	alt, ok = Parse("8535914845").Alternate()
	require.True(t, ok)
	require.Equal(t, ISBN("9788535914849"), alt)
}

func TestIsDomestic(t *testing.T) {
	require.True(t, Parse("978-85-359-1484-9").IsDomestic())
	require.True(t, Parse("9786555320000").IsDomestic())
	require.True(t, Parse("8535914845").IsDomestic())
	require.True(t, Parse("6500000000").IsDomestic())
	require.False(t, Parse("9780140447934").IsDomestic())
	require.False(t, Parse("0140447938").IsDomestic())
}

func TestMatches(t *testing.T) {
	id := Parse("9788535914849")
	require.True(t, id.Matches("978-85-359-1484-9"))
	require.True(t, id.Matches("8535914845"))
	require.False(t, id.Matches("9780140447934"))
	require.False(t, id.Matches(""))
}

func TestMatchesPublishedISBN10(t *testing.T) {
	id := Parse("9780306406157")
	require.True(t, id.Matches("0-306-40615-2"))
	require.True(t, Parse("0306406152").Matches("9780306406157"))
	require.False(t, id.Matches("0306406209"))

	alt, ok := id.Alternate()
	require.True(t, ok)
	require.True(t, id.Matches(alt.String()))
}

func TestISBN13(t *testing.T) {
	require.Equal(t, "9788535914849", Parse("8535914845").ISBN13())
	require.Equal(t, "9788535914849", Parse("9788535914849").ISBN13())
	require.Equal(t, "", Parse("123").ISBN13())
}
