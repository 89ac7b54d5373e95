package extractor

// Schema is every structural assumption made about the board markup. A site
// redesign should only need a new Schema.
type Schema struct {
	// list page
	Row         string
	Cell        string
	Link        string
	LinkAttr    string
	OfferMarker string

	// detail page
	PostContainer string
	Header        string
	Heading       string
	Details       string
	DetailBlock   string
	Description   string
	Thumbnail     string
	ThumbnailAttr string

	PostIDPrefix   string
	TitlePrefix    string
	LocationPrefix string
	DatePrefix     string
}

// DefaultSchema matches the freecycle.org group pages.
func DefaultSchema() Schema {
	return Schema{
		Row:         "tr",
		Cell:        "td",
		Link:        "a",
		LinkAttr:    "href",
		OfferMarker: "OFFER",

		PostContainer: "#group_post",
		Header:        "header",
		Heading:       "h2",
		Details:       "#post_details",
		DetailBlock:   "div",
		Description:   "p",
		Thumbnail:     "#post_thumbnail",
		ThumbnailAttr: "src",

		PostIDPrefix:   "Post ID: ",
		TitlePrefix:    "OFFER: ",
		LocationPrefix: "Location :",
		DatePrefix:     "Date : ",
	}
}
