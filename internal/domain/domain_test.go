package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostKey(t *testing.T) {
	assert.Equal(t, "123", Post{PostID: "123", URL: "https://example.org/posts/123"}.Key())
	assert.Equal(t, "https://example.org/posts/123", Post{URL: "https://example.org/posts/123"}.Key())
}

func TestPostHasImage(t *testing.T) {
	assert.False(t, Post{ImageURL: NoImage}.HasImage())
	assert.True(t, Post{ImageURL: "https://images.example.org/1.jpg"}.HasImage())
}

func TestBoardListURL(t *testing.T) {
	b := Board{URL: "https://groups.freecycle.org/group/GuildfordUK/posts/all"}
	assert.Equal(t, "https://groups.freecycle.org/group/GuildfordUK/posts/all?resultsperpage=100", b.ListURL(100))

	withQuery := Board{URL: "https://groups.freecycle.org/group/GuildfordUK/posts/offer?resultsperpage=10&page=2"}
	assert.Equal(t, "https://groups.freecycle.org/group/GuildfordUK/posts/offer?page=2&resultsperpage=100", withQuery.ListURL(100))
}

func TestReportTotals(t *testing.T) {
	r := Report{Boards: []BoardReport{
		{Board: "a", Posts: 10, Matches: 2, Notified: 1, Skipped: 1},
		{Board: "b", Posts: 5, Matches: 1, Notified: 1},
		{Board: "c", Err: errors.New("down")},
	}}

	total := r.Totals()
	assert.Equal(t, 15, total.Posts)
	assert.Equal(t, 3, total.Matches)
	assert.Equal(t, 2, total.Notified)
	assert.Equal(t, 1, total.Skipped)
	assert.Equal(t, 1, r.Failed())
}
