package domain

import (
	"net/url"
	"strconv"
)

const ResultsPerPageParam = "resultsperpage"

type Board struct {
	URL string `json:"url"`
}

// ListURL returns the board URL asking for perPage results on one page.
func (b Board) ListURL(perPage int) string {
	u, err := url.Parse(b.URL)
	if err != nil {
		return b.URL + "?" + ResultsPerPageParam + "=" + strconv.Itoa(perPage)
	}
	q := u.Query()
	q.Set(ResultsPerPageParam, strconv.Itoa(perPage))
	u.RawQuery = q.Encode()
	return u.String()
}
