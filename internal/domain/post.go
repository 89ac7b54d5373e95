package domain

// NoImage is stored in Post.ImageURL when the detail page has no thumbnail.
const NoImage = "NO IMAGE"

// Post is one offer parsed from its detail page.
type Post struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	PostID   string `json:"post_id"`
	Location string `json:"location"`
	Date     string `json:"date"`      // as printed by the site, not parsed
	FullDesc string `json:"full_desc"` // lower-cased
	ImageURL string `json:"image_url"`
}

// Key identifies a post for deduplication: the site id, or the URL when the id is blank.
func (p Post) Key() string {
	if p.PostID != "" {
		return p.PostID
	}
	return p.URL
}

func (p Post) HasImage() bool {
	return p.ImageURL != NoImage
}

// Match is a post whose description contained Keyword.
type Match struct {
	Board   Board  `json:"board"`
	Post    Post   `json:"post"`
	Keyword string `json:"keyword"`
}
