package parserimpl

import (
	"context"
	"time"

	"github.com/orgball2608/freecycle-offer-bot/internal/domain"
	"github.com/orgball2608/freecycle-offer-bot/internal/keyword"
	"github.com/orgball2608/freecycle-offer-bot/internal/notifier"
	"github.com/orgball2608/freecycle-offer-bot/internal/repositories/seen"
	"github.com/orgball2608/freecycle-offer-bot/pkg/errors"
	"github.com/orgball2608/freecycle-offer-bot/pkg/formatter"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

func (p *ParserImpl) ParseBoard(ctx context.Context, board domain.Board) ([]domain.Post, error) {
	listURL := board.ListURL(p.Config.Parser.ResultsPerPage)

	page, ok := p.Fetcher.Fetch(ctx, listURL)
	if !ok {
		return nil, errors.FetchFailed(listURL)
	}

	links, err := p.Extractor.ExtractOfferLinks(listURL, page)
	if err != nil {
		return nil, err
	}
	p.Logger.Debug("Found offer links", "board", board.URL, "count", len(links))

	// slots keep link order whatever order the workers finish in
	slots := make([]*domain.Post, len(links))
	strict := p.Config.Parser.Strict

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Config.Parser.Workers)
	for i, link := range links {
		i, link := i, link
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			post, err := p.parsePost(gctx, link)
			if err != nil {
				if strict {
					return err
				}
				p.Logger.Warn("Skipping post", "board", board.URL, "url", link, "error", err)
				return nil
			}
			slots[i] = &post
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	posts := lo.FilterMap(slots, func(post *domain.Post, _ int) (domain.Post, bool) {
		if post == nil {
			return domain.Post{}, false
		}
		return *post, true
	})
	return lo.UniqBy(posts, domain.Post.Key), nil
}

func (p *ParserImpl) parsePost(ctx context.Context, link string) (domain.Post, error) {
	page, ok := p.Fetcher.Fetch(ctx, link)
	if !ok {
		return domain.Post{}, errors.FetchFailed(link)
	}
	return p.Extractor.ExtractPost(link, page)
}

func (p *ParserImpl) CheckBoards(ctx context.Context) (domain.Report, error) {
	started := time.Now()
	var report domain.Report

	for _, board := range p.Sources.Boards {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		br, err := p.checkBoard(ctx, board)
		br.Err = err
		report.Boards = append(report.Boards, br)

		if err != nil {
			if p.Config.Parser.Strict {
				return report, err
			}
			p.Logger.Error("Failed to check board", "board", board.URL, "error", err)
		}
	}

	total := report.Totals()
	p.Logger.Info("Board check completed",
		"boards", len(report.Boards),
		"failed", report.Failed(),
		"posts", formatter.FormatNumber(total.Posts),
		"matches", formatter.FormatNumber(total.Matches),
		"notified", formatter.FormatNumber(total.Notified),
		"duration", time.Since(started).Round(time.Millisecond).String(),
	)
	return report, nil
}

func (p *ParserImpl) checkBoard(ctx context.Context, board domain.Board) (domain.BoardReport, error) {
	br := domain.BoardReport{Board: board.URL}

	if err := p.Notifier.BoardStarted(ctx, board); err != nil {
		return br, errors.Wrap(err, "failed to announce board")
	}

	posts, err := p.ParseBoard(ctx, board)
	if err != nil {
		return br, err
	}
	br.Posts = len(posts)

	for _, post := range posts {
		kw, ok := keyword.Match(post.FullDesc, p.Sources.Keywords)
		if !ok {
			continue
		}
		br.Matches++

		notified, err := p.notifyOnce(ctx, domain.Match{Board: board, Post: post, Keyword: kw})
		if err != nil {
			if p.Config.Parser.Strict {
				return br, err
			}
			p.Logger.Error("Failed to notify about match", "post_key", post.Key(), "error", err)
			continue
		}
		if notified {
			br.Notified++
		} else {
			br.Skipped++
		}
	}

	p.Logger.Info("Board checked", "board", board.URL, "posts", br.Posts, "matches", br.Matches, "notified", br.Notified)
	return br, nil
}

// notifyOnce reports a match unless its post was sent out before. A post is
// recorded as seen once any sink accepted it, so sinks that failed are not
// retried on the next run.
func (p *ParserImpl) notifyOnce(ctx context.Context, match domain.Match) (bool, error) {
	key := match.Post.Key()

	exists, err := p.SeenRepo.Exists(ctx, key)
	if err != nil {
		return false, errors.Wrap(err, "failed to check seen post")
	}
	if exists {
		p.Logger.Debug("Match already sent", "post_key", key)
		return false, nil
	}

	if err := p.Notifier.Notify(ctx, match); err != nil {
		var partial *notifier.PartialError
		if !errors.As(err, &partial) {
			return false, errors.Wrap(err, "failed to notify")
		}
		p.Logger.Warn("Match delivered to some sinks only", "post_key", key, "error", err)
	}

	err = p.SeenRepo.Create(ctx, domain.SeenPost{
		PostKey:  key,
		BoardURL: match.Board.URL,
		PostURL:  match.Post.URL,
	})
	if err != nil && !errors.Is(err, seen.ErrAlreadyExists) {
		return true, errors.Wrap(err, "failed to record seen post")
	}
	return true, nil
}
