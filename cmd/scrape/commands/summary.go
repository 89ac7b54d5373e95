package commands

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/orgball2608/freecycle-offer-bot/internal/domain"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

func renderSummary(w io.Writer, report domain.Report) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Board", "Posts", "Matches", "Notified", "Skipped", "Error"})

	for _, b := range report.Boards {
		errText := ""
		if b.Err != nil {
			errText = b.Err.Error()
		}
		t.AppendRow(table.Row{b.Board, b.Posts, b.Matches, b.Notified, b.Skipped, errText})
	}

	total := report.Totals()
	t.AppendFooter(table.Row{"Total", total.Posts, total.Matches, total.Notified, total.Skipped, report.Failed()})
	t.Render()
}
