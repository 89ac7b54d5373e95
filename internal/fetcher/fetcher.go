package fetcher

import (
	"context"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock.go
type Client interface {
	// Fetch returns the body of an HTML page at url. ok is false when the
	// request failed, the status was not 200 or the content was not HTML.
	Fetch(ctx context.Context, url string) (body []byte, ok bool)
}

// IsGoodResponse reports whether a response looks like an HTML page.
func IsGoodResponse(status int, contentType string) bool {
	return status == 200 && strings.Contains(strings.ToLower(contentType), "html")
}
