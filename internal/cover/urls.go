package cover

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultCoversBaseURL is the Open Library covers host.
const DefaultCoversBaseURL = "https://covers.openlibrary.org"

// ISBNCoverURL builds the deterministic large-size cover URL for an identifier.
func ISBNCoverURL(base, id string) string {
	return strings.TrimRight(base, "/") + "/b/isbn/" + id + "-L.jpg"
}

// IDCoverURL builds the large-size cover URL for an Open Library cover id.
func IDCoverURL(base string, coverID int) string {
	return strings.TrimRight(base, "/") + "/b/id/" + strconv.Itoa(coverID) + "-L.jpg"
}

// UpgradeGoogleThumbnail asks Google Books for a larger rendition of a
// thumbnail: zoom is raised to 3 and the page-curl effect is removed.
// Unparseable input is returned unchanged.
func UpgradeGoogleThumbnail(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if q.Has("zoom") {
		q.Set("zoom", "3")
	}
	q.Del("edge")
	u.RawQuery = q.Encode()
	return u.String()
}
