package sources

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/orgball2608/freecycle-offer-bot/internal/domain"
	"github.com/orgball2608/freecycle-offer-bot/pkg/config"
	"github.com/samber/lo"
)

// Sources is the explicit list of boards and keywords one check runs over.
type Sources struct {
	Boards   []domain.Board
	Keywords []string
}

// New is the fx constructor.
func New(cfg *config.Config) (Sources, error) {
	return Load(cfg.Parser)
}

// Load merges the file based lists with the inline ones, files first. Board
// URLs are trimmed; keywords are kept verbatim, surrounding spaces included.
func Load(p config.Parser) (Sources, error) {
	boards, err := merge(p.BoardsFile, p.Boards, strings.TrimSpace)
	if err != nil {
		return Sources{}, fmt.Errorf("failed to load boards: %w", err)
	}
	keywords, err := merge(p.KeywordsFile, p.Keywords, func(s string) string { return s })
	if err != nil {
		return Sources{}, fmt.Errorf("failed to load keywords: %w", err)
	}

	return Sources{
		Boards: lo.Map(boards, func(u string, _ int) domain.Board {
			return domain.Board{URL: u}
		}),
		Keywords: keywords,
	}, nil
}

func merge(path string, inline []string, normalize func(string) string) ([]string, error) {
	var entries []string
	if path != "" {
		lines, err := LoadLines(path)
		if err != nil {
			return nil, err
		}
		entries = append(entries, lines...)
	}
	entries = append(entries, inline...)

	out := lo.FilterMap(entries, func(v string, _ int) (string, bool) {
		v = normalize(v)
		return v, strings.TrimSpace(v) != ""
	})
	return lo.Uniq(out), nil
}

// LoadLines reads one entry per line, skipping blank lines and # comments.
// Only the line ending is removed.
func LoadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}
