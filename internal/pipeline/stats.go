package pipeline

// RunStats aggregates counters for a finished run.
type RunStats struct {
	Total     int // tasks given to the run
	Completed int // entries produced (== Total unless interrupted)
	Succeeded int
	Failed    int
}

// Collect builds RunStats from a terminal RunDone event's entry list.
func Collect(total int, entries []*Entry) RunStats {
	s := RunStats{Total: total, Completed: len(entries)}
	for _, e := range entries {
		if e.Outcome == OutcomeSuccess {
			s.Succeeded++
		} else {
			s.Failed++
		}
	}
	return s
}
