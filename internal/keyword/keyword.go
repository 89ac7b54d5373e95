// Package keyword decides whether a post description is interesting.
package keyword

import "strings"

// Match returns the first keyword contained in desc.
//
// desc is expected to be lower-cased already while keywords are used as
// given, so a keyword with upper-case letters never matches. Empty keywords
// are ignored.
func Match(desc string, keywords []string) (string, bool) {
	for _, k := range keywords {
		if k == "" {
			continue
		}
		if strings.Contains(desc, k) {
			return k, true
		}
	}
	return "", false
}
