package domain

import "time"

// SeenPost records a match that was already sent out.
type SeenPost struct {
	ID        int
	PostKey   string
	BoardURL  string
	PostURL   string
	CreatedAt time.Time
}
