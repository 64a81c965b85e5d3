package pipeline

import "github.com/google/uuid"

// EventKind discriminates the notifications a run emits.
type EventKind int

const (
	// EventItemStarted fires before an item is dispatched to the analysis client.
	EventItemStarted EventKind = iota
	// EventItemDone fires after an item's entry (success or failure) is appended.
	EventItemDone
	// EventRunDone is the terminal event; it carries the full entry list.
	EventRunDone
)

// Event is one notification from a batch run. Events arrive in strict
// ascending index order, one Started/Done pair per item with no gaps,
// followed by exactly one RunDone, after which the channel closes.
type Event struct {
	Kind  EventKind
	RunID uuid.UUID

	Index int    // zero-based item index (ItemStarted, ItemDone)
	Total int    // task count of the run
	Name  string // ItemStarted: base name of the file being dispatched

	Entry     *Entry // ItemDone: the completed entry (still runner-owned)
	Completed int    // ItemDone, RunDone: entries finished so far

	Failures int      // RunDone: count of Failure entries
	Entries  []*Entry // RunDone: the ordered result list; ownership transfers here
}

// Progress returns the completed fraction of the run in [0, 1].
func (e Event) Progress() float64 {
	if e.Total == 0 {
		return 0
	}
	return float64(e.Completed) / float64(e.Total)
}
