package commands

import (
	"fmt"

	"github.com/orgball2608/freecycle-offer-bot/internal/fetcher/fetcherimpl"
	"github.com/orgball2608/freecycle-offer-bot/internal/notifier"
	"github.com/orgball2608/freecycle-offer-bot/internal/parser/parserimpl"
	"github.com/orgball2608/freecycle-offer-bot/internal/repositories/seen"
	"github.com/orgball2608/freecycle-offer-bot/internal/sources"
	"github.com/orgball2608/freecycle-offer-bot/pkg/config"
	"github.com/orgball2608/freecycle-offer-bot/pkg/logger"
	"github.com/spf13/cobra"
)

type runFlags struct {
	boardsFile   string
	keywordsFile string
	boards       []string
	keywords     []string
	strict       bool
	workers      int
	summary      bool
}

var flags runFlags

func init() {
	f := runCmd.Flags()
	f.StringVar(&flags.boardsFile, "boards-file", "", "File with one board URL per line.")
	f.StringVar(&flags.keywordsFile, "keywords-file", "", "File with one keyword per line.")
	f.StringSliceVarP(&flags.boards, "board", "b", nil, "Board URL to check, may be repeated.")
	f.StringSliceVarP(&flags.keywords, "keyword", "k", nil, "Keyword to look for, may be repeated.")
	f.BoolVar(&flags.strict, "strict", false, "Abort on the first fetch or parse error.")
	f.IntVarP(&flags.workers, "workers", "w", 0, "Detail pages fetched in parallel per board.")
	f.BoolVar(&flags.summary, "summary", true, "Print a per-board summary table to stderr.")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [--boards-file <path>] [--keywords-file <path>] [-b <url>...] [-k <keyword>...]",
	Short: "Checks every board once and prints matching offers to stdout.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		flags.apply(cfg)

		log := logger.New(logger.Opts{Env: cfg.App.Env, SentryUrl: cfg.App.SentryUrl})
		defer logger.Flush()

		src, err := sources.Load(cfg.Parser)
		if err != nil {
			return err
		}
		if len(src.Boards) == 0 {
			return fmt.Errorf("no boards configured, use --board or --boards-file")
		}

		p, err := parserimpl.New(parserimpl.Opts{
			Fetcher:  fetcherimpl.New(fetcherimpl.Opts{Config: cfg, Logger: log}),
			Notifier: notifier.NewStdout(cmd.OutOrStdout()),
			SeenRepo: seen.NewMemory(),
			Sources:  src,
			Logger:   log,
			Config:   cfg,
		})
		if err != nil {
			return err
		}

		report, err := p.CheckBoards(cmd.Context())
		if flags.summary {
			renderSummary(cmd.ErrOrStderr(), report)
		}
		if err != nil {
			return err
		}
		if report.Failed() == len(report.Boards) {
			return fmt.Errorf("all %d boards failed", len(report.Boards))
		}
		return nil
	},
}

// apply lets flags override what was read from the environment.
func (f runFlags) apply(cfg *config.Config) {
	if f.boardsFile != "" {
		cfg.Parser.BoardsFile = f.boardsFile
	}
	if f.keywordsFile != "" {
		cfg.Parser.KeywordsFile = f.keywordsFile
	}
	cfg.Parser.Boards = append(cfg.Parser.Boards, f.boards...)
	cfg.Parser.Keywords = append(cfg.Parser.Keywords, f.keywords...)
	if f.strict {
		cfg.Parser.Strict = true
	}
	if f.workers > 0 {
		cfg.Parser.Workers = f.workers
	}
}
