package extractor

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/orgball2608/freecycle-offer-bot/internal/domain"
	"github.com/orgball2608/freecycle-offer-bot/pkg/errors"
	"github.com/samber/lo"
)

// Extractor turns board list pages and post detail pages into links and posts.
type Extractor struct {
	schema Schema
	strict bool
}

// New returns an Extractor for schema. In strict mode a malformed list row
// fails the whole page instead of being skipped.
func New(schema Schema, strict bool) *Extractor {
	return &Extractor{
		schema: schema,
		strict: strict,
	}
}

// ExtractOfferLinks returns the detail page links of every offer row on a list
// page, resolved against baseURL, without duplicates and in document order.
func (e *Extractor) ExtractOfferLinks(baseURL string, page []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse list page")
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}

	s := e.schema
	var (
		links  []string
		rowErr error
	)
	doc.Find(s.Row).EachWithBreak(func(i int, row *goquery.Selection) bool {
		cells := row.Find(s.Cell)
		if cells.Length() == 0 {
			if e.strict {
				rowErr = errors.Malformed(baseURL, "row %d has no cells", i)
				return false
			}
			return true
		}

		if !strings.Contains(cells.Eq(0).Text(), s.OfferMarker) {
			return true
		}

		if cells.Length() < 2 {
			if e.strict {
				rowErr = errors.Malformed(baseURL, "offer row %d has %d cells", i, cells.Length())
				return false
			}
			return true
		}

		href, ok := cells.Eq(1).Find(s.Link).First().Attr(s.LinkAttr)
		href = strings.TrimSpace(href)
		if !ok || href == "" {
			if e.strict {
				rowErr = errors.Malformed(baseURL, "offer row %d has no link", i)
				return false
			}
			return true
		}

		links = append(links, resolve(base, href))
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return lo.Uniq(links), nil
}

// ExtractPost parses a detail page. It never returns a partly filled post:
// any missing anchor yields errors.ErrMalformedPage.
func (e *Extractor) ExtractPost(link string, page []byte) (domain.Post, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return domain.Post{}, errors.Wrap(err, "failed to parse detail page")
	}

	s := e.schema

	container := doc.Find(s.PostContainer).First()
	if container.Length() == 0 {
		return domain.Post{}, errors.Malformed(link, "missing post container %q", s.PostContainer)
	}

	headings := container.Find(s.Header).First().Find(s.Heading)
	if headings.Length() == 0 {
		return domain.Post{}, errors.Malformed(link, "missing post header")
	}
	postID := stripPrefix(headings.Eq(0).Text(), s.PostIDPrefix)
	title := ""
	if headings.Length() > 1 {
		title = stripPrefix(headings.Eq(1).Text(), s.TitlePrefix)
	}

	details := doc.Find(s.Details).First()
	if details.Length() == 0 {
		return domain.Post{}, errors.Malformed(link, "missing post details %q", s.Details)
	}

	// one block carries everything; with two the first is location only
	blocks := details.Find(s.DetailBlock)
	var dateBlock *goquery.Selection
	switch blocks.Length() {
	case 1:
		dateBlock = blocks.Eq(0)
	case 2:
		dateBlock = blocks.Eq(1)
	default:
		return domain.Post{}, errors.Malformed(link, "expected 1 or 2 detail blocks, found %d", blocks.Length())
	}

	desc := container.Find(s.Description).First()
	if desc.Length() == 0 {
		return domain.Post{}, errors.Malformed(link, "missing description")
	}

	imageURL := domain.NoImage
	if thumb := doc.Find(s.Thumbnail).First(); thumb.Length() > 0 {
		src, ok := thumb.Attr(s.ThumbnailAttr)
		if !ok {
			return domain.Post{}, errors.Malformed(link, "thumbnail without %s", s.ThumbnailAttr)
		}
		imageURL = strings.TrimSpace(src)
	}

	return domain.Post{
		URL:      link,
		Title:    title,
		PostID:   postID,
		Location: stripPrefix(blocks.Eq(0).Text(), s.LocationPrefix),
		Date:     stripPrefix(dateBlock.Text(), s.DatePrefix),
		FullDesc: strings.ToLower(strings.TrimSpace(desc.Text())),
		ImageURL: imageURL,
	}, nil
}

func stripPrefix(text, prefix string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), prefix))
}

func resolve(base *url.URL, href string) string {
	if base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
