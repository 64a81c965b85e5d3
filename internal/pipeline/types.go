package pipeline

import "path/filepath"

// ErrorTitle marks a failed entry's title in tables and exports. The
// canonical failure signal is [Entry.Outcome]; the sentinel string exists
// for presentation only.
const ErrorTitle = "ERROR"

// failureMessageCap bounds the failure text stored on an entry so a
// multi-kilobyte service error cannot blow up a table cell.
const failureMessageCap = 120

// FileTask identifies one input image of a run.
type FileTask struct {
	Path string // absolute path; stable identity for the run
	Name string // base name at scan time
	Ext  string // extension including the leading dot
}

// NewFileTask derives a FileTask from a path.
func NewFileTask(path string) FileTask {
	name := filepath.Base(path)
	return FileTask{Path: path, Name: name, Ext: filepath.Ext(name)}
}

// Outcome tags an entry as a successful or failed analysis.
type Outcome int

const (
	// OutcomeFailure is the zero value so an entry never defaults to renameable.
	OutcomeFailure Outcome = iota
	OutcomeSuccess
)

// String returns a short status label for tables.
func (o Outcome) String() string {
	if o == OutcomeSuccess {
		return "ok"
	}
	return "failed"
}

// Entry is one row of a run's output, in input order. The runner owns its
// entries until the RunDone event fires; after that the consumer may edit
// Title and Description freely and hand the list to the renamer, which
// updates SourcePath in place on each successful rename.
type Entry struct {
	SourcePath   string // current on-disk path of the image
	OriginalName string // base name at scan time; never changes
	Title        string // generated title, or ErrorTitle on failure
	Description  string // alt text, or the truncated failure message
	Outcome      Outcome
}

// fail marks the entry as a Failure carrying a bounded error message.
func (e *Entry) fail(err error) *Entry {
	e.Title = ErrorTitle
	e.Description = truncateMessage(err.Error())
	e.Outcome = OutcomeFailure
	return e
}

// truncateMessage caps msg at failureMessageCap characters, counting runes
// so a multi-byte character is never split.
func truncateMessage(msg string) string {
	runes := []rune(msg)
	if len(runes) <= failureMessageCap {
		return msg
	}
	return string(runes[:failureMessageCap])
}
