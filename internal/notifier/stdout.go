package notifier

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/orgball2608/freecycle-offer-bot/internal/domain"
)

var (
	bannerRule    = strings.Repeat("#", 63)
	postDelimiter = strings.Repeat("-", 39)
)

// Stdout prints matches as plain lines, one field per line.
type Stdout struct {
	mu sync.Mutex
	w  io.Writer
}

func NewStdout(w io.Writer) *Stdout {
	return &Stdout{w: w}
}

var _ Notifier = (*Stdout)(nil)

func (s *Stdout) BoardStarted(_ context.Context, board domain.Board) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := fmt.Fprintf(s.w, "%[1]s\n%[1]s\n%[2]s\n%[1]s\n%[1]s\n", bannerRule, board.URL)
	return err
}

func (s *Stdout) Notify(_ context.Context, match domain.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := match.Post
	_, err := fmt.Fprintf(s.w, "%s\n%s\n%s\n%s\n%s\n%s\n%s\n%s\n",
		p.Title,
		p.PostID,
		p.Location,
		p.Date,
		p.ImageURL,
		p.FullDesc,
		p.URL,
		postDelimiter,
	)
	return err
}
