package domain

// BoardReport summarises one board in a check run.
type BoardReport struct {
	Board    string
	Posts    int
	Matches  int
	Notified int
	Skipped  int
	Err      error
}

type Report struct {
	Boards []BoardReport
}

func (r Report) Totals() BoardReport {
	var total BoardReport
	for _, b := range r.Boards {
		total.Posts += b.Posts
		total.Matches += b.Matches
		total.Notified += b.Notified
		total.Skipped += b.Skipped
	}
	return total
}

func (r Report) Failed() int {
	n := 0
	for _, b := range r.Boards {
		if b.Err != nil {
			n++
		}
	}
	return n
}
