package aggregate

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
)

// commitsPerPage is 1 so that the last page number equals the commit count.
// This relies on the platform reporting an accurate last page.
const commitsPerPage = 1

var lastPagePattern = regexp.MustCompile(`page=(\d+)>; rel="last"`)

// lastPageFromLink extracts N from a Link header containing
// `page=N>; rel="last"`. ok is false when there is no such link.
func lastPageFromLink(header http.Header) (n int, ok bool) {
	link := header.Get("Link")
	if link == "" {
		return 0, false
	}
	m := lastPagePattern.FindStringSubmatch(link)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// totalPages reads X-Total-Pages; a missing or malformed header is 0.
func totalPages(header http.Header) int {
	n, err := strconv.Atoi(strings.TrimSpace(header.Get("X-Total-Pages")))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
